package cache

// lruNode is a node of the intrusive recency list.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is a doubly linked list ordered from most to least recently
// used. It is not safe for concurrent use; shards guard it with their
// mutex.
type lruList[K comparable] struct {
	root lruNode[K] // sentinel: root.next is the front, root.prev the oldest
	len  int
}

func newLRUList[K comparable]() *lruList[K] {
	l := &lruList[K]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of nodes in the list.
func (l *lruList[K]) Len() int {
	return l.len
}

// PushFront inserts key as the most recently used node.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key}
	l.insertFront(n)
	l.len++
	return n
}

func (l *lruList[K]) insertFront(n *lruNode[K]) {
	n.prev = &l.root
	n.next = l.root.next
	l.root.next.prev = n
	l.root.next = n
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}

// MoveToFront marks n as the most recently used node.
func (l *lruList[K]) MoveToFront(n *lruNode[K]) {
	if n == nil || n.prev == nil || l.root.next == n {
		return
	}
	l.unlink(n)
	l.insertFront(n)
}

// Remove deletes n from the list.
func (l *lruList[K]) Remove(n *lruNode[K]) {
	if n == nil || n.prev == nil {
		return
	}
	l.unlink(n)
	l.len--
}

// Oldest returns the least recently used key.
func (l *lruList[K]) Oldest() (K, bool) {
	if l.len == 0 {
		var zero K
		return zero, false
	}
	return l.root.prev.key, true
}

// RemoveOldest deletes and returns the least recently used key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.len == 0 {
		var zero K
		return zero, false
	}
	n := l.root.prev
	l.Remove(n)
	return n.key, true
}

// Clear removes all nodes.
func (l *lruList[K]) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}
