package routinemanager

//Manager hands out a fixed number of numbered slots. Lock blocks until a
//slot is free.
type Manager struct {
	c chan int
}

func NewManager(maxRoutines int) *Manager {
	maxRoutines = max(maxRoutines, 1)
	m := &Manager{
		c: make(chan int, maxRoutines),
	}
	for i := 0; i < maxRoutines; i++ {
		m.c <- i
	}
	return m
}

func (m *Manager) Lock() int {
	return <-m.c
}

func (m *Manager) Unlock(n int) {
	m.c <- n
}

//Size is the number of slots.
func (m *Manager) Size() int {
	return cap(m.c)
}
