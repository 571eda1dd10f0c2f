package mino

import (
	"math/rand"
)

// QueueSize is the number of upcoming pieces previewed.
const QueueSize = 4

// Queue is the FIFO of upcoming catalog indices. It is filled lazily by the
// first Take and holds exactly QueueSize indices from then on.
type Queue struct {
	Indices []int

	size       int
	randomizer *rand.Rand
}

func NewQueue(randomizer *rand.Rand, size int) *Queue {
	return &Queue{Indices: make([]int, 0, size), size: size, randomizer: randomizer}
}

func (q *Queue) random() int {
	return q.randomizer.Intn(Count())
}

func (q *Queue) fill() {
	for len(q.Indices) < q.size {
		q.Indices = append(q.Indices, q.random())
	}
}

// Take pops the front index and appends a fresh random index to the tail.
func (q *Queue) Take() int {
	if len(q.Indices) == 0 {
		q.fill()
	}

	i := q.Indices[0]

	copy(q.Indices, q.Indices[1:])
	q.Indices[len(q.Indices)-1] = q.random()

	return i
}

// Peek returns a copy of the upcoming indices, front first.
func (q *Queue) Peek() []int {
	p := make([]int, len(q.Indices))
	copy(p, q.Indices)

	return p
}

func (q *Queue) Len() int {
	return len(q.Indices)
}

func (q *Queue) Reset() {
	q.Indices = q.Indices[:0]
}
