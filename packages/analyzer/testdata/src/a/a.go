package a

type Tx struct {
	ID    int
	Items []string
}

func (t Tx) Clone() Tx {
	out := t
	out.Items = append([]string(nil), t.Items...)
	return out
}

type Resource struct {
	handle int
}

func (r *Resource) Clone() *Resource {
	return &Resource{handle: r.handle}
}

func sink(v any) {}

func notExpanded(batch []Tx) {
	for _, tx := range batch {
		//clonecap:clone tx // want `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(tx)
		}()
	}
}

func current(batch []Tx) {
	for _, tx := range batch {
		//clonecap:clone tx
		tx := tx.Clone()
		go func() {
			sink(tx)
		}()
	}
}

func stale(batch []Tx) {
	for _, tx := range batch {
		//clonecap:clone mut tx // want `expanded bindings do not match the capture list \(run 'clonecap expand -w'\)`
		tx := tx.Clone()
		go func() {
			sink(tx)
		}()
	}
}

func malformed(batch []Tx) {
	for _, tx := range batch {
		//clonecap:clone mut // want `expected identifier after mut`
		go func() {
			sink(tx)
		}()
	}
}

func spaced(batch []Tx) {
	for _, tx := range batch {
		// clonecap:clone tx // want `space before clonecap: makes this a plain comment \(write //clonecap: with no space\)`
		go func() {
			sink(tx)
		}()
	}
}

func unknownVerb(batch []Tx) {
	for _, tx := range batch {
		//clonecap:copy tx // want `unknown clonecap directive "copy"`
		go func() {
			sink(tx)
		}()
	}
}

//clonecap:clone tx // want `clone directive must sit at statement level inside a function body`

func duplicated(batch []Tx) {
	for _, tx := range batch {
		//clonecap:clone tx, mut tx // want `duplicate capture "tx" in clone list` `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(tx)
		}()
	}
}

func unused(batch []Tx) {
	for _, tx := range batch {
		//clonecap:clone tx // want `no closure follows the clone directive; the duplicated bindings protect nothing`
		tx := tx.Clone()
		sink(tx)
	}
}

func trailing(batch []Tx) {
	for _, tx := range batch {
		sink(tx)
		//clonecap:clone tx // want `clone directive is not expanded \(run 'clonecap expand -w'\)` `no closure follows the clone directive; the duplicated bindings protect nothing`
	}
}

func deferred(res *Resource) {
	if res != nil {
		//clonecap:clone res
		res := res.Clone()
		defer func() {
			sink(res)
		}()
	}
}

func assigned(batch []Tx) {
	for _, tx := range batch {
		//clonecap:clone tx
		tx := tx.Clone()
		fn := func() { sink(tx) }
		fn()
	}
}

func routed(batch []Tx) {
	for _, tx := range batch {
		switch tx.ID {
		//clonecap:clone tx // want `clone directive must sit at statement level inside a function body`
		case 0:
			go func() {
				sink(tx)
			}()
		}
	}
}

func staged(batch []Tx) {
	for _, tx := range batch {
		switch tx.ID {
		case 0:
			//clonecap:clone tx
			tx := tx.Clone()
			go func() {
				sink(tx)
			}()
		}
	}
}
