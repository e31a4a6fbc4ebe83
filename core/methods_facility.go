// SPDX-License-Identifier: MIT
//
// File: methods_facility.go
// Role: Facility (airport) metadata: designated departure and arrival points.

package core

import "fmt"

// AddFacility registers an empty facility under code. It reports false if
// code is empty or already registered.
func (g *Graph) AddFacility(code string) bool {
	if code == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.facByCode[code]; exists {
		return false
	}
	f := &Facility{Code: code}
	g.facilities = append(g.facilities, f)
	g.facByCode[code] = f

	return true
}

// AddFacilityPoint appends the node named name to the departure or arrival
// list of facility code. Adding a point already listed is a no-op.
//
// Errors:
//   - ErrFacilityNotFound if code is unknown.
//   - ErrNodeNotFound if name is unknown.
func (g *Graph) AddFacilityPoint(code, name string, kind FacilityPointKind) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	f, ok := g.facByCode[code]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFacilityNotFound, code)
	}
	n, ok := g.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	list := &f.Departures
	if kind == Arrival {
		list = &f.Arrivals
	}
	for _, existing := range *list {
		if existing.ID == n.ID {
			return nil
		}
	}
	*list = append(*list, n)

	return nil
}

// Facility returns a snapshot of the facility registered under code.
func (g *Graph) Facility(code string) (*Facility, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f, ok := g.facByCode[code]
	if !ok {
		return nil, false
	}

	return f.clone(), true
}

// Facilities returns snapshots of all facilities in registration order.
func (g *Graph) Facilities() []*Facility {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Facility, 0, len(g.facilities))
	for _, f := range g.facilities {
		out = append(out, f.clone())
	}

	return out
}

func (f *Facility) clone() *Facility {
	return &Facility{
		Code:       f.Code,
		Departures: append([]*Node(nil), f.Departures...),
		Arrivals:   append([]*Node(nil), f.Arrivals...),
	}
}
