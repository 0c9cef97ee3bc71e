// The per-group process state machine. Each group's progress through the
// departure hall is a chain of continuations driven by the scheduler:
// between suspension points (Sleep, Station.Acquire) code runs to
// completion without interleaving.

package sim

import (
	"github.com/sirupsen/logrus"
)

// groupProc walks one passenger group through:
//
//	check-in (online | kiosk | counter)
//	  -> baggage (none | combined counter | tag kiosk then drop point)
//	  -> security front
//
// The counter handles check-in only; the combined baggage counter covers
// tag issuance and bag drop in a single service.
type groupProc struct {
	sim   *Simulator
	group *PassengerGroup
}

func (p *groupProc) begin(now float64) {
	g := p.group
	switch g.CheckinMode {
	case CheckinOnline:
		// No contention: a small fixed delay models digital check-in
		// overhead, passing the check-in node without queueing.
		p.sim.Sleep(p.sim.Config.OnlineCheckinDelaySec, func(now float64) {
			g.CurrentNode = StationCheckinKiosk
			p.beginBaggage(now)
		})
	case CheckinKiosk:
		p.visit(p.sim.Stations.CheckinKiosk, &g.Checkin, p.beginBaggage)
	case CheckinCounter:
		p.visit(p.sim.Stations.CheckinCounter, &g.Checkin, p.beginBaggage)
	default:
		logrus.Errorf("group %d: unknown check-in mode %q, skipping to baggage", g.ID, g.CheckinMode)
		p.beginBaggage(now)
	}
}

func (p *groupProc) beginBaggage(now float64) {
	g := p.group
	switch g.BaggageMode {
	case BaggageNone:
		p.beginSecurity(now)
	case BaggageCounter:
		// One acquire, one sampled duration covering tag + drop.
		p.visit(p.sim.Stations.BaggageCounter, &g.BaggageCounter, p.beginSecurity)
	case BaggageSelf:
		// Tag kiosk first; the drop point strictly after the tag release.
		p.visit(p.sim.Stations.TagKiosk, &g.Tag, func(now float64) {
			p.visit(p.sim.Stations.DropPoint, &g.Drop, p.beginSecurity)
		})
	default:
		logrus.Errorf("group %d: unknown baggage mode %q, skipping to security", g.ID, g.BaggageMode)
		p.beginSecurity(now)
	}
}

func (p *groupProc) beginSecurity(now float64) {
	g := p.group
	g.CurrentNode = NodeSecurityGate
	zone := p.sim.Areas.ZoneFor(NodeSecurityGate)
	p.sim.Areas.Enter(now, zone, g.ID, g.Size)

	p.sim.Sleep(p.sim.Config.SecurityTransitDelaySec, func(now float64) {
		g.SecurityArrival = now
		g.SecurityReached = true
		p.sim.Areas.Leave(now, zone, g.ID)
		p.sim.completeGroup(g)
		logrus.Debugf("[%8.1fs] group %d reached security (total %.1fs)", now, g.ID, g.TotalTime())
	})
}

// visit performs one full station cycle: enter the station's zone, join the
// queue, wait for a grant, hold for a sampled service duration, release,
// leave the zone, then continue with then.
func (p *groupProc) visit(st *Station, times *StageTimes, then func(now float64)) {
	g := p.group
	now := p.sim.Clock
	zone := p.sim.Areas.ZoneFor(st.Name)

	g.CurrentNode = st.Name
	p.sim.Areas.Enter(now, zone, g.ID, g.Size)
	times.Visited = true
	times.QueueEnter = now

	st.Acquire(now, g.ID, g.Size, func(now float64) {
		times.ServiceStart = now
		duration := p.sim.serviceSample(st.Name)

		p.sim.Sleep(duration, func(now float64) {
			times.ServiceEnd = now
			st.Release(now)
			p.sim.Areas.Leave(now, zone, g.ID)
			then(now)
		})
	})
}
