package xz

//NextCoder owns at most one nested Coder.
//
//The zero value is an empty slot. A filled slot is emptied only by Replace
//or End, and whoever holds the slot is responsible for calling End.
type NextCoder struct {
	coder Coder
}

//Replace ends the current coder, if any, and installs the one returned by
//init. If init fails the slot is left empty and its error is returned.
func (n *NextCoder) Replace(init func() (Coder, error)) error {
	n.End()
	c, err := init()
	if err != nil {
		return err
	}
	if c == nil {
		return ErrMem
	}
	n.coder = c
	return nil
}

//Occupied reports whether a coder is installed.
func (n *NextCoder) Occupied() bool {
	return n.coder != nil
}

//Code forwards to the installed coder.
func (n *NextCoder) Code(b *Buffer, action Action) (Status, error) {
	if n.coder == nil {
		return OK, ErrProg
	}
	return n.coder.Code(b, action)
}

//Check returns the installed coder's check kind, or CheckNone if it has no
//way to report one.
func (n *NextCoder) Check() CheckID {
	if cr, ok := n.coder.(CheckReporter); ok {
		return cr.Check()
	}
	return CheckNone
}

//End ends the installed coder and empties the slot.
func (n *NextCoder) End() {
	if n.coder == nil {
		return
	}
	n.coder.End()
	n.coder = nil
}
