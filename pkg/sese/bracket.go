package sese

// bracket is one element of a bracket list: a backedge that spans the tree
// edge currently being classified. Brackets double as the linked-list nodes
// so that push, remove, and concat touch no auxiliary storage.
//
// arc is the arc id of the backedge, or -1 for a capping bracket created to
// separate classes at a branch node. recentSize and recentClass record the
// list size and the class id allocated the last time this bracket was the
// topmost element; recentSize 0 means it has never been on top.
type bracket struct {
	arc         int
	recentSize  int
	recentClass int
	prev, next  *bracket
}

// capping reports whether this is a synthetic capping bracket.
func (b *bracket) capping() bool { return b.arc < 0 }

// bracketList is an intrusive doubly linked list of brackets ordered from
// most recently pushed (head) to oldest (tail). All operations are O(1);
// concat splices, it does not copy.
type bracketList struct {
	head, tail *bracket
	size       int
}

// push places b on top of the list.
func (l *bracketList) push(b *bracket) {
	b.prev = nil
	b.next = l.head
	if l.head != nil {
		l.head.prev = b
	} else {
		l.tail = b
	}
	l.head = b
	l.size++
}

// top returns the most recently pushed bracket, or nil if the list is empty.
func (l *bracketList) top() *bracket { return l.head }

// remove unlinks b from the list. b must be an element of l.
func (l *bracketList) remove(b *bracket) {
	if b.prev != nil {
		b.prev.next = b.next
	} else {
		l.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else {
		l.tail = b.prev
	}
	b.prev, b.next = nil, nil
	l.size--
}

// concat splices other below the current contents of l and drains other.
// The top of l is unchanged unless l was empty, in which case other's top
// becomes the top of l.
func (l *bracketList) concat(other *bracketList) {
	if other.size == 0 {
		return
	}
	if l.size == 0 {
		l.head, l.tail, l.size = other.head, other.tail, other.size
	} else {
		l.tail.next = other.head
		other.head.prev = l.tail
		l.tail = other.tail
		l.size += other.size
	}
	other.head, other.tail, other.size = nil, nil, 0
}
