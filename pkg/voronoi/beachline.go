package voronoi

// beachSection - дуга параболы на пляжной линии.
// edge - открытое ребро между дугой и ее левым соседом.
// circle - узел запланированного события круга в очереди, nilID если события нет.
type beachSection struct {
	site   *Site
	edge   *Edge
	circle nodeID
}

// beachline - упорядоченная последовательность дуг слева направо.
// Ключей нет: порядок задается местом вставки, а точки излома считаются на лету.
type beachline struct {
	tree rbTree[beachSection]
}

// insertAfter вставляет новую дугу сразу справа от prev (nilID - самой левой)
func (b *beachline) insertAfter(prev nodeID, site *Site) nodeID {
	return b.tree.insertSuccessor(prev, beachSection{site: site})
}

func (b *beachline) remove(arc nodeID)            { b.tree.remove(arc) }
func (b *beachline) arc(id nodeID) *beachSection  { return b.tree.value(id) }
func (b *beachline) predecessor(id nodeID) nodeID { return b.tree.prev(id) }
func (b *beachline) successor(id nodeID) nodeID   { return b.tree.next(id) }
func (b *beachline) leftmost() nodeID             { return b.tree.first() }
func (b *beachline) root() nodeID                 { return b.tree.root }
func (b *beachline) leftChild(id nodeID) nodeID   { return b.tree.at(id).left }
func (b *beachline) rightChild(id nodeID) nodeID  { return b.tree.at(id).right }
func (b *beachline) len() int                     { return b.tree.len() }

// transitions - дуги, исчезающие в одном событии круга, вместе с выжившими крайними соседями.
// Хранятся копии: после отсоединения узел арены может быть переиспользован.
type transitions []beachSection

func (s *transitions) appendLeft(b beachSection) {
	*s = append(*s, b)
	for id := len(*s) - 1; id > 0; id-- {
		(*s)[id] = (*s)[id-1]
	}
	(*s)[0] = b
}

func (s *transitions) appendRight(b beachSection) {
	*s = append(*s, b)
}
