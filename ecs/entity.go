package ecs

import "strconv"

// Entity is a generational handle into the world's entity store. The
// generation guards against stale handles after an id is recycled.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

func (e Entity) Valid() bool {
	return e.ID > 0
}
