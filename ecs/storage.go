package ecs

// entityStore tracks entity generations and recycles freed ids.
type entityStore struct {
	gens []generation // indexed by id-1
	free []entityID
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.gens = append(s.gens, 0)
		id = entityID(len(s.gens))
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gens[e.id()-1]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.id() == 0 || int(e.id()) > len(s.gens) {
		return false
	}
	return s.gens[e.id()-1] == e.generation()
}

// handle rebuilds the live Entity for an id, or 0 if the id was never used.
func (s *entityStore) handle(id entityID) Entity {
	if s == nil || id == 0 || int(id) > len(s.gens) {
		return 0
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) all() []Entity {
	if s == nil {
		return nil
	}
	freed := make(map[entityID]struct{}, len(s.free))
	for _, id := range s.free {
		freed[id] = struct{}{}
	}
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i := range s.gens {
		id := entityID(i + 1)
		if _, ok := freed[id]; ok {
			continue
		}
		out = append(out, makeEntity(id, s.gens[i]))
	}
	return out
}
