package pipeline

import "time"

type Tx struct {
	ID    string
	Items []string
}

func (t *Tx) Clone() *Tx {
	items := make([]string, len(t.Items))
	copy(items, t.Items)
	return &Tx{ID: t.ID, Items: items}
}

type Counter struct {
	n int
}

func (c *Counter) Clone() *Counter {
	return &Counter{n: c.n}
}

func (c *Counter) Add(delta int) {
	c.n += delta
}

func fanout(batch []*Tx, counter *Counter, sink chan<- *Tx) {
	for _, tx := range batch {
		//clonecap:clone tx, mut counter
		go func() {
			counter.Add(len(tx.Items))
			sink <- tx
		}()
	}
}

func replay(batch []*Tx, delay time.Duration) {
	for _, tx := range batch {
		//clonecap:clone tx
		tx := tx.Clone()
		time.AfterFunc(delay, func() {
			tx.Items = nil
		})
	}
}
