package telemetry

import "strconv"

// NodeLabel renders the node id for the movement stream; spine members
// carry the "S" suffix marker.
func (m MovementRow) NodeLabel() string {
	s := strconv.Itoa(m.Node)
	if m.Spine {
		s += "S"
	}
	return s
}

// ParseNodeLabel reverses NodeLabel.
func ParseNodeLabel(label string) (node int, spine bool, err error) {
	if len(label) > 0 && label[len(label)-1] == 'S' {
		spine = true
		label = label[:len(label)-1]
	}
	node, err = strconv.Atoi(label)
	return node, spine, err
}
