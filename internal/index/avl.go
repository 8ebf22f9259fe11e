// Package index maintains the in-memory ordering of tasks: a self-balancing
// AVL tree keyed by priority, paired with an id map so lookups by task ID
// stay O(log n) without walking the tree.
package index

import (
	"github.com/josephgoksu/smarttask/models"
	"github.com/josephgoksu/smarttask/types"
)

type node struct {
	task   models.Task
	key    int // task.Priority at insertion time
	left   *node
	right  *node
	height int
}

// Tree is the priority index. The zero value is not usable; call New.
// Nodes are owned exclusively by the tree; every task handed out is a copy.
type Tree struct {
	root *node
	byID map[string]*node
}

// New returns an empty index.
func New() *Tree {
	return &Tree{byID: make(map[string]*node)}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func updateHeight(n *node) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func rotateLeft(n *node) *node {
	newRoot := n.right
	n.right = newRoot.left
	newRoot.left = n
	updateHeight(n)
	updateHeight(newRoot)
	return newRoot
}

func rotateRight(n *node) *node {
	newRoot := n.left
	n.left = newRoot.right
	newRoot.right = n
	updateHeight(n)
	updateHeight(newRoot)
	return newRoot
}

// rebalance applies the four-case rotation scheme (LL, RR, LR, RL) when a
// node's subtree heights differ by more than one.
func rebalance(n *node) *node {
	bf := balanceFactor(n)
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// Len reports the number of tasks in the index.
func (t *Tree) Len() int {
	return len(t.byID)
}

// Insert adds a task keyed by its priority. It returns ErrDuplicateID if the
// ID is already registered and ErrDuplicatePriority if another task holds the
// same priority value; in either case the index is left unchanged. Callers
// are expected to have resolved priority collisions through the assignment
// pass first.
func (t *Tree) Insert(task models.Task) error {
	if _, ok := t.byID[task.ID]; ok {
		return types.ErrDuplicateID
	}
	root, err := t.insert(t.root, task)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

func (t *Tree) insert(n *node, task models.Task) (*node, error) {
	if n == nil {
		leaf := &node{task: task, key: task.Priority, height: 1}
		t.byID[task.ID] = leaf
		return leaf, nil
	}
	switch {
	case task.Priority < n.key:
		left, err := t.insert(n.left, task)
		if err != nil {
			return n, err
		}
		n.left = left
	case task.Priority > n.key:
		right, err := t.insert(n.right, task)
		if err != nil {
			return n, err
		}
		n.right = right
	default:
		return n, types.ErrDuplicatePriority
	}
	updateHeight(n)
	return rebalance(n), nil
}

// Delete removes the task with the given ID, rebalancing on the way back up.
// It returns ErrTaskNotFound if the ID is absent. Surviving priorities are
// not renumbered; the gap disappears on the next insert or status change.
func (t *Tree) Delete(id string) error {
	n, ok := t.byID[id]
	if !ok {
		return types.ErrTaskNotFound
	}
	t.root = t.remove(t.root, n.key)
	return nil
}

func (t *Tree) remove(n *node, key int) *node {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key:
		n.left = t.remove(n.left, key)
	case key > n.key:
		n.right = t.remove(n.right, key)
	default:
		delete(t.byID, n.task.ID)
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}
			return child
		}
		// Two children: adopt the in-order successor's record and key, then
		// delete the successor from the right subtree. The id map must point
		// at this node again afterwards.
		succ := minNode(n.right)
		n.task = succ.task
		n.key = succ.key
		n.right = t.remove(n.right, succ.key)
		t.byID[n.task.ID] = n
	}
	updateHeight(n)
	return rebalance(n)
}

func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Search returns a copy of the task with the given ID, or ErrTaskNotFound.
func (t *Tree) Search(id string) (models.Task, error) {
	n, ok := t.byID[id]
	if !ok {
		return models.Task{}, types.ErrTaskNotFound
	}
	return n.task, nil
}

// InOrder returns all tasks in ascending priority order. The slice and its
// elements are copies; callers may mutate them freely.
func (t *Tree) InOrder() []models.Task {
	tasks := make([]models.Task, 0, len(t.byID))
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		tasks = append(tasks, n.task)
		walk(n.right)
	}
	walk(t.root)
	return tasks
}

// Rebuild discards the current tree and id map and reinserts every task from
// the given sequence. It is used after any global renumbering pass, and at
// startup to restore the ordering persisted by the previous session.
func (t *Tree) Rebuild(tasks []models.Task) error {
	t.root = nil
	t.byID = make(map[string]*node, len(tasks))
	for _, task := range tasks {
		if err := t.Insert(task); err != nil {
			return err
		}
	}
	return nil
}
