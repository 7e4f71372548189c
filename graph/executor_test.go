package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteNode_Success(t *testing.T) {
	r := &Runnable{graph: NewStateGraph()}
	node := Node{
		Name: "ok",
		Run:  constNode(State{"out": "v"}),
	}

	res := r.executeNode(context.Background(), node, State{})

	assert.Equal(t, "ok", res.Node)
	assert.NoError(t, res.Err)
	assert.False(t, res.FallbackUsed)
	assert.Equal(t, State{"out": "v"}, res.Update)
}

func TestExecuteNode_ErrorSubstitutesFallback(t *testing.T) {
	r := &Runnable{graph: NewStateGraph()}
	cause := errors.New("timeout")
	node := Node{
		Name:     "flaky",
		Run:      failingNode(cause),
		Fallback: State{"out": []string{}},
	}

	res := r.executeNode(context.Background(), node, State{})

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, cause)
	assert.True(t, res.FallbackUsed)
	assert.Equal(t, State{"out": []string{}}, res.Update)
}

func TestExecuteNode_PanicIsContained(t *testing.T) {
	r := &Runnable{graph: NewStateGraph()}
	node := Node{
		Name: "panicky",
		Run: func(_ context.Context, _ State) (State, error) {
			panic("nil deref somewhere")
		},
		Fallback: State{"out": "fallback"},
	}

	res := r.executeNode(context.Background(), node, State{})

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "panic in node panicky")
	assert.True(t, res.FallbackUsed)
	assert.Equal(t, State{"out": "fallback"}, res.Update)
}

// A panicking node inside a full run must not take the workflow down.
func TestInvoke_PanickingNodeDoesNotAbortRun(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("bad", "", func(_ context.Context, _ State) (State, error) {
		var m map[string]int
		m["boom"] = 1 // deliberate nil-map write
		return nil, nil
	}, State{"bad": "fallback"})
	g.AddNode("good", "", constNode(State{"good": "v"}), nil)
	g.AddEdge(START, "bad")
	g.AddEdge(START, "good")
	g.AddEdge("bad", END)
	g.AddEdge("good", END)

	runnable, err := g.Compile()
	require.NoError(t, err)

	final, results := runnable.InvokeWithResults(context.Background(), State{})

	assert.Equal(t, "fallback", final["bad"])
	assert.Equal(t, "v", final["good"])
	assert.True(t, results["bad"].FallbackUsed)
}

func TestExecuteNode_NilFallback(t *testing.T) {
	r := &Runnable{graph: NewStateGraph()}
	node := Node{Name: "bare", Run: failingNode(errors.New("x"))}

	res := r.executeNode(context.Background(), node, State{})

	assert.True(t, res.FallbackUsed)
	assert.Nil(t, res.Update)
}
