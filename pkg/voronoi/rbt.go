package voronoi

// nodeID - индекс узла в арене дерева. Нулевой индекс зарезервирован под "нет узла",
// поэтому нулевое значение rbTree готово к использованию.
type nodeID int32

const nilID nodeID = 0

type rbNode[T any] struct {
	value    T
	left     nodeID
	right    nodeID
	parent   nodeID
	previous nodeID
	next     nodeID
	red      bool
}

// rbTree - красно-черное дерево без ключей: порядок задается местом вставки.
// Узлы прошиты ссылками previous/next, так что соседи доступны за O(1).
type rbTree[T any] struct {
	nodes []rbNode[T]
	free  []nodeID
	root  nodeID
	size  int
}

func (t *rbTree[T]) at(id nodeID) *rbNode[T] {
	return &t.nodes[id]
}

// value - указатель на значение узла. Действителен до следующей вставки.
func (t *rbTree[T]) value(id nodeID) *T {
	return &t.nodes[id].value
}

func (t *rbTree[T]) prev(id nodeID) nodeID { return t.nodes[id].previous }
func (t *rbTree[T]) next(id nodeID) nodeID { return t.nodes[id].next }
func (t *rbTree[T]) len() int              { return t.size }

func (t *rbTree[T]) first() nodeID {
	if t.root == nilID {
		return nilID
	}
	return t.getFirst(t.root)
}

func (t *rbTree[T]) alloc(value T) nodeID {
	if len(t.nodes) == 0 {
		// нулевой узел - страж, никогда не выдается
		t.nodes = append(t.nodes, rbNode[T]{})
	}
	var id nodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, rbNode[T]{})
		id = nodeID(len(t.nodes) - 1)
	}
	t.nodes[id] = rbNode[T]{value: value, red: true}
	return id
}

func (t *rbTree[T]) release(id nodeID) {
	t.nodes[id] = rbNode[T]{}
	t.free = append(t.free, id)
}

// insertSuccessor вставляет значение сразу после node в порядке обхода.
// node == nilID - вставка самым левым узлом.
func (t *rbTree[T]) insertSuccessor(node nodeID, value T) nodeID {
	successor := t.alloc(value)
	s := t.at(successor)

	var parent nodeID
	if node != nilID {
		n := t.at(node)
		s.previous = node
		s.next = n.next
		if n.next != nilID {
			t.at(n.next).previous = successor
		}
		n.next = successor
		if n.right != nilID {
			// самый левый узел правого поддерева
			node = t.getFirst(n.right)
			t.at(node).left = successor
		} else {
			n.right = successor
		}
		parent = node
	} else if t.root != nilID {
		node = t.getFirst(t.root)
		s.previous = nilID
		s.next = node
		t.at(node).previous = successor
		t.at(node).left = successor
		parent = node
	} else {
		s.previous = nilID
		s.next = nilID
		t.root = successor
		parent = nilID
	}
	s.left = nilID
	s.right = nilID
	s.parent = parent
	s.red = true
	t.size++

	node = successor
	for parent != nilID && t.at(parent).red {
		grandpa := t.at(parent).parent
		if parent == t.at(grandpa).left {
			uncle := t.at(grandpa).right
			if t.isRed(uncle) {
				t.at(parent).red = false
				t.at(uncle).red = false
				t.at(grandpa).red = true
				node = grandpa
			} else {
				if node == t.at(parent).right {
					t.rotateLeft(parent)
					node = parent
					parent = t.at(node).parent
				}
				t.at(parent).red = false
				t.at(grandpa).red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := t.at(grandpa).left
			if t.isRed(uncle) {
				t.at(parent).red = false
				t.at(uncle).red = false
				t.at(grandpa).red = true
				node = grandpa
			} else {
				if node == t.at(parent).left {
					t.rotateRight(parent)
					node = parent
					parent = t.at(node).parent
				}
				t.at(parent).red = false
				t.at(grandpa).red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = t.at(node).parent
	}
	t.at(t.root).red = false
	return successor
}

// insertOrdered - вставка по порядку: спуск влево, пока before(value, узел) истинно
func (t *rbTree[T]) insertOrdered(value T, before func(a, b T) bool) nodeID {
	predecessor := nilID
	node := t.root
	for node != nilID {
		n := t.at(node)
		if before(value, n.value) {
			if n.left != nilID {
				node = n.left
			} else {
				predecessor = n.previous
				break
			}
		} else {
			if n.right != nilID {
				node = n.right
			} else {
				predecessor = node
				break
			}
		}
	}
	return t.insertSuccessor(predecessor, value)
}

func (t *rbTree[T]) remove(node nodeID) {
	removed := node
	defer t.release(removed)
	t.size--

	n := t.at(node)
	if n.next != nilID {
		t.at(n.next).previous = n.previous
	}
	if n.previous != nilID {
		t.at(n.previous).next = n.next
	}
	n.next = nilID
	n.previous = nilID

	parent := n.parent
	left := n.left
	right := n.right
	var next nodeID
	if left == nilID {
		next = right
	} else if right == nilID {
		next = left
	} else {
		next = t.getFirst(right)
	}
	if parent != nilID {
		if t.at(parent).left == node {
			t.at(parent).left = next
		} else {
			t.at(parent).right = next
		}
	} else {
		t.root = next
	}

	var isRed bool
	if left != nilID && right != nilID {
		nx := t.at(next)
		isRed = nx.red
		nx.red = n.red
		nx.left = left
		t.at(left).parent = next
		if next != right {
			parent = nx.parent
			nx.parent = n.parent
			node = nx.right
			t.at(parent).left = node
			nx.right = right
			t.at(right).parent = next
		} else {
			nx.parent = parent
			parent = next
			node = nx.right
		}
	} else {
		isRed = n.red
		node = next
	}
	if node != nilID {
		t.at(node).parent = parent
	}
	if isRed {
		return
	}
	if t.isRed(node) {
		t.at(node).red = false
		return
	}

	var sibling nodeID
	for node != t.root {
		if node == t.at(parent).left {
			sibling = t.at(parent).right
			if t.isRed(sibling) {
				t.at(sibling).red = false
				t.at(parent).red = true
				t.rotateLeft(parent)
				sibling = t.at(parent).right
			}
			if t.isRed(t.at(sibling).left) || t.isRed(t.at(sibling).right) {
				if !t.isRed(t.at(sibling).right) {
					t.at(t.at(sibling).left).red = false
					t.at(sibling).red = true
					t.rotateRight(sibling)
					sibling = t.at(parent).right
				}
				t.at(sibling).red = t.at(parent).red
				t.at(parent).red = false
				t.at(t.at(sibling).right).red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = t.at(parent).left
			if t.isRed(sibling) {
				t.at(sibling).red = false
				t.at(parent).red = true
				t.rotateRight(parent)
				sibling = t.at(parent).left
			}
			if t.isRed(t.at(sibling).left) || t.isRed(t.at(sibling).right) {
				if !t.isRed(t.at(sibling).left) {
					t.at(t.at(sibling).right).red = false
					t.at(sibling).red = true
					t.rotateLeft(sibling)
					sibling = t.at(parent).left
				}
				t.at(sibling).red = t.at(parent).red
				t.at(parent).red = false
				t.at(t.at(sibling).left).red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		t.at(sibling).red = true
		node = parent
		parent = t.at(parent).parent
		if t.at(node).red {
			break
		}
	}
	if node != nilID {
		t.at(node).red = false
	}
}

func (t *rbTree[T]) isRed(id nodeID) bool {
	return id != nilID && t.nodes[id].red
}

func (t *rbTree[T]) rotateLeft(node nodeID) {
	p := node
	q := t.at(node).right
	parent := t.at(p).parent
	if parent != nilID {
		if t.at(parent).left == p {
			t.at(parent).left = q
		} else {
			t.at(parent).right = q
		}
	} else {
		t.root = q
	}
	t.at(q).parent = parent
	t.at(p).parent = q
	t.at(p).right = t.at(q).left
	if t.at(p).right != nilID {
		t.at(t.at(p).right).parent = p
	}
	t.at(q).left = p
}

func (t *rbTree[T]) rotateRight(node nodeID) {
	p := node
	q := t.at(node).left
	parent := t.at(p).parent
	if parent != nilID {
		if t.at(parent).left == p {
			t.at(parent).left = q
		} else {
			t.at(parent).right = q
		}
	} else {
		t.root = q
	}
	t.at(q).parent = parent
	t.at(p).parent = q
	t.at(p).left = t.at(q).right
	if t.at(p).left != nilID {
		t.at(t.at(p).left).parent = p
	}
	t.at(q).right = p
}

func (t *rbTree[T]) getFirst(node nodeID) nodeID {
	for t.at(node).left != nilID {
		node = t.at(node).left
	}
	return node
}
