package services

import (
	"path"
	"sort"
	"strings"
)

// PathEntry names one compared file and the index of its diff in the
// active change set.
type PathEntry struct {
	Path      string
	DiffIndex int
}

// PathTreeNode is a node in the file-pane tree, either a directory or a
// compared file.
type PathTreeNode struct {
	Path      string          // full slash-separated path from the root
	DiffIndex int             // -1 for directories
	Children  []*PathTreeNode // nil for files
	Depth     int             // cached depth for rendering
}

// TreeService holds the file-pane tree together with its collapse and
// selection state.
type TreeService struct {
	Tree          *PathTreeNode
	TreeFlat      []*PathTreeNode
	CollapsedDirs map[string]bool
	Index         int
}

// NewTreeService creates an empty TreeService.
func NewTreeService() *TreeService {
	return &TreeService{
		CollapsedDirs: make(map[string]bool),
	}
}

// BuildPathTree groups a flat list of compared paths into a directory
// tree. Every path segment becomes its own node; children are ordered
// lexicographically by name with directories and files interleaved. A
// path appearing twice keeps the later entry's diff index.
func BuildPathTree(entries []PathEntry) *PathTreeNode {
	root := &PathTreeNode{Path: "", DiffIndex: -1, Children: make([]*PathTreeNode, 0)}
	if len(entries) == 0 {
		return root
	}

	nodesByPath := make(map[string]*PathTreeNode)

	for _, entry := range entries {
		parts := strings.Split(entry.Path, "/")

		current := root
		for j := range parts {
			isFile := j == len(parts)-1
			pathSoFar := strings.Join(parts[:j+1], "/")

			if existing, ok := nodesByPath[pathSoFar]; ok {
				if isFile && existing.Children == nil {
					existing.DiffIndex = entry.DiffIndex
				}
				current = existing
				continue
			}

			node := &PathTreeNode{Path: pathSoFar, DiffIndex: -1}
			if isFile {
				node.DiffIndex = entry.DiffIndex
			} else {
				node.Children = make([]*PathTreeNode, 0)
			}
			current.Children = append(current.Children, node)
			nodesByPath[pathSoFar] = node
			current = node
		}
	}

	sortPathTree(root)
	return root
}

func sortPathTree(node *PathTreeNode) {
	if node == nil || node.Children == nil {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		return node.Children[i].Name() < node.Children[j].Name()
	})

	for _, child := range node.Children {
		sortPathTree(child)
	}
}

// FlattenPathTree returns the visible nodes in render order, skipping the
// children of collapsed directories.
func FlattenPathTree(node *PathTreeNode, collapsed map[string]bool, depth int) []*PathTreeNode {
	if node == nil {
		return nil
	}

	result := make([]*PathTreeNode, 0)

	// The synthetic root is not rendered, only its children.
	if node.Path != "" || node.Children == nil {
		nodeCopy := *node
		nodeCopy.Depth = depth
		result = append(result, &nodeCopy)

		if collapsed[node.Path] {
			return result
		}
	}

	if node.Children != nil {
		childDepth := depth
		if node.Path != "" {
			childDepth = depth + 1
		}
		for _, child := range node.Children {
			result = append(result, FlattenPathTree(child, collapsed, childDepth)...)
		}
	}

	return result
}

// IsDir reports whether this node is a directory.
func (n *PathTreeNode) IsDir() bool {
	return n.Children != nil
}

// Name returns the last path segment for display.
func (n *PathTreeNode) Name() string {
	if n.Path == "" {
		return ""
	}
	return path.Base(n.Path)
}

// Rebuild replaces the tree from a fresh set of entries, keeping the
// collapse state of directories that still exist.
func (s *TreeService) Rebuild(entries []PathEntry) {
	s.Tree = BuildPathTree(entries)
	s.RebuildFlat()
	s.ClampIndex()
}

// RebuildFlat recomputes the flattened render list.
func (s *TreeService) RebuildFlat() {
	if s.CollapsedDirs == nil {
		s.CollapsedDirs = make(map[string]bool)
	}
	s.TreeFlat = FlattenPathTree(s.Tree, s.CollapsedDirs, 0)
}

// ToggleCollapse flips a directory's collapse state and rebuilds the
// flat list.
func (s *TreeService) ToggleCollapse(dirPath string) {
	if dirPath == "" {
		return
	}
	if s.CollapsedDirs == nil {
		s.CollapsedDirs = make(map[string]bool)
	}
	s.CollapsedDirs[dirPath] = !s.CollapsedDirs[dirPath]
	s.RebuildFlat()
}

// Selected returns the node under the cursor, or nil when the list is
// empty.
func (s *TreeService) Selected() *PathTreeNode {
	if s.Index >= 0 && s.Index < len(s.TreeFlat) {
		return s.TreeFlat[s.Index]
	}
	return nil
}

// RestoreSelection moves the cursor back to the given path if it is
// still visible.
func (s *TreeService) RestoreSelection(p string) {
	if p == "" {
		return
	}
	for i, node := range s.TreeFlat {
		if node.Path == p {
			s.Index = i
			return
		}
	}
}

// ClampIndex keeps the cursor within the flat list.
func (s *TreeService) ClampIndex() {
	if s.Index < 0 {
		s.Index = 0
	}
	if len(s.TreeFlat) > 0 && s.Index >= len(s.TreeFlat) {
		s.Index = len(s.TreeFlat) - 1
	}
	if len(s.TreeFlat) == 0 {
		s.Index = 0
	}
}

// NextFile moves the cursor forward to the next file node, wrapping at
// the end. It returns the node reached, or nil when no files are
// visible.
func (s *TreeService) NextFile() *PathTreeNode {
	return s.seekFile(1)
}

// PrevFile moves the cursor backward to the previous file node,
// wrapping at the start.
func (s *TreeService) PrevFile() *PathTreeNode {
	return s.seekFile(-1)
}

func (s *TreeService) seekFile(step int) *PathTreeNode {
	n := len(s.TreeFlat)
	if n == 0 {
		return nil
	}
	idx := s.Index
	for range n {
		idx = ((idx+step)%n + n) % n
		if !s.TreeFlat[idx].IsDir() {
			s.Index = idx
			return s.TreeFlat[idx]
		}
	}
	return nil
}
