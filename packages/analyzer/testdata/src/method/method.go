package method

type Tx struct {
	n int
}

func (t *Tx) Clone() *Tx {
	return &Tx{n: t.n}
}

type Plain struct {
	n int
}

type Odd struct {
	n int
}

func (o Odd) Clone(depth int) Odd {
	return o
}

var tag string

func sink(vs ...any) {}

func ok(batch []*Tx) {
	for _, tx := range batch {
		//clonecap:clone tx
		tx := tx.Clone()
		go func() {
			sink(tx)
		}()
	}
}

func mixed(txs []*Tx) {
	for _, tx := range txs {
		//clonecap:clone tx, mut tag // want `captured tag \(type string\) has no Clone method` `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(tx, tag)
		}()
	}
}

func plainMissing(ps []Plain) {
	for _, p := range ps {
		//clonecap:clone p // want `captured p \(type Plain\) has no Clone method` `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(p)
		}()
	}
}

func wrongShape(odds []Odd) {
	for _, odd := range odds {
		//clonecap:clone odd // want `Clone method of captured odd must take no arguments and return one value` `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(odd)
		}()
	}
}

func unresolved() {
	for i := 0; i < 1; i++ {
		//clonecap:clone ghost // want `cannot resolve captured identifier "ghost"` `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(i)
		}()
	}
}

func notVar() {
	for i := 0; i < 1; i++ {
		//clonecap:clone sink // want `captured "sink" is not a variable` `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(i)
		}()
	}
}

func sameBlock() {
	for i := 0; i < 1; i++ {
		local := &Tx{n: i}
		//clonecap:clone local // want `local is declared in the directive's own block; the generated local := local.Clone\(\) cannot redeclare it` `clone directive is not expanded \(run 'clonecap expand -w'\)`
		go func() {
			sink(local)
		}()
	}
}

func paramBlock(tx *Tx) {
	//clonecap:clone tx // want `tx is declared in the directive's own block; the generated tx := tx.Clone\(\) cannot redeclare it` `clone directive is not expanded \(run 'clonecap expand -w'\)`
	go func() {
		sink(tx)
	}()
}
