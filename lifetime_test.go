package bintree

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// token is a payload which counts its own destruction. It carries a pointer
// field to keep it out of the runtime's tiny allocator.
type token struct {
	id    int
	label *string
}

func newToken(id int, destroyed *atomic.Int32) *token {
	tok := &token{id: id}
	runtime.AddCleanup(tok, func(cnt *atomic.Int32) { cnt.Add(1) }, destroyed)
	return tok
}

// buildChain creates a left-leaning chain of depth n with a right leaf at every
// inner node, i.e. 2n-1 nodes.
func buildChain(n int, destroyed *atomic.Int32) *Node[*token] {
	node := NewLeaf(newToken(0, destroyed))
	for i := 1; i < n; i++ {
		node = Fork(newToken(2*i, destroyed), node, NewLeaf(newToken(2*i+1, destroyed)))
	}
	return node
}

// awaitCount runs the garbage collector until cnt reaches want or a timeout
// expires.
func awaitCount(cnt *atomic.Int32, want int32) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		runtime.GC()
		if cnt.Load() >= want {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cnt.Load() >= want
}

func TestDroppedTreeIsReclaimed(t *testing.T) {
	const depth = 50
	var destroyed atomic.Int32
	func() {
		root := buildChain(depth, &destroyed)
		if err := Check(root); err != nil {
			t.Fatal(err)
		}
	}()
	if !awaitCount(&destroyed, 2*depth-1) {
		t.Errorf("expected %d payloads to be destroyed, got %d", 2*depth-1, destroyed.Load())
	}
}

func TestRemovedSubtreeIsReclaimed(t *testing.T) {
	const depth = 10
	var destroyed atomic.Int32
	root := Fork(newToken(-1, &destroyed), nil, NewLeaf(newToken(-2, &destroyed)))
	func() {
		root.ReplaceLeft(buildChain(depth, &destroyed))
		root.RemoveLeft()
	}()
	if !awaitCount(&destroyed, 2*depth-1) {
		t.Errorf("expected %d payloads to be destroyed, got %d", 2*depth-1, destroyed.Load())
	}
	if !root.HasRight() || root.Right().Parent() != root {
		t.Errorf("expected remaining tree to be intact")
	}
	if n := destroyed.Load(); n != 2*depth-1 {
		t.Errorf("expected only the removed subtree to be reclaimed, %d payloads destroyed", n)
	}
	runtime.KeepAlive(root)
}

func TestChildDoesNotKeepParentAlive(t *testing.T) {
	var destroyed atomic.Int32
	var child *Node[*token]
	func() {
		root := Fork(newToken(1, &destroyed), NewLeaf(newToken(2, &destroyed)), nil)
		child = root.Left()
	}()
	if !awaitCount(&destroyed, 1) {
		t.Fatalf("expected parent to be reclaimed while child is still referenced")
	}
	if child.HasParent() || child.Parent() != nil {
		t.Errorf("expected parent of child to resolve to nil")
	}
	if child.Value().id != 2 {
		t.Errorf("expected child to be unaffected")
	}
	runtime.KeepAlive(child)
}

func TestExternalReferenceExtendsLifetime(t *testing.T) {
	var destroyed atomic.Int32
	var sub *Node[*token]
	func() {
		root := Fork(newToken(1, &destroyed), buildChain(3, &destroyed), nil)
		sub = root.Left()
	}()
	if !awaitCount(&destroyed, 1) {
		t.Fatalf("expected root payload to be destroyed")
	}
	time.Sleep(10 * time.Millisecond)
	runtime.GC()
	if n := destroyed.Load(); n != 1 {
		t.Errorf("expected subtree held by client to survive, %d payloads destroyed", n)
	}
	if err := Check(sub); err != nil {
		t.Error(err)
	}
	runtime.KeepAlive(sub)
}
