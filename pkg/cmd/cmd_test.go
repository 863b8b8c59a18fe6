package cmd

import (
	"context"
	"strings"
	"testing"
)

type named struct {
	name string
	ran  *[]string
}

func (n named) Name() string        { return n.name }
func (n named) Description() string { return "desc " + n.name }
func (n named) Run(context.Context, *Invocation) error {
	*n.ran = append(*n.ran, n.name)
	return nil
}

func tag(label string, trace *[]string) Middleware {
	return func(c Command) Command {
		return Wrap(c, func(ctx context.Context, inv *Invocation) error {
			*trace = append(*trace, label)
			return c.Run(ctx, inv)
		})
	}
}

func TestApplyOrder(t *testing.T) {
	var trace []string
	c := Apply(named{"done", &trace}, tag("inner", &trace), tag("outer", &trace))

	if err := c.Run(context.Background(), &Invocation{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Join(trace, ","); got != "outer,inner,done" {
		t.Fatalf("trace = %s", got)
	}
	if c.Name() != "done" || c.Description() != "desc done" {
		t.Fatalf("wrapped identity = %s / %s", c.Name(), c.Description())
	}
	if root, ok := Root(c).(named); !ok || root.name != "done" {
		t.Fatalf("Root = %#v", Root(c))
	}
}

func TestRegistry(t *testing.T) {
	var trace []string
	r := NewRegistry()
	r.Register(named{"status", &trace})
	r.Register(named{"done", &trace})

	if r.Get("status") == nil || r.Get("missing") != nil {
		t.Fatal("Get returned the wrong command")
	}
	all := r.GetAll()
	if len(all) != 2 || all[0].Name() != "done" || all[1].Name() != "status" {
		t.Fatalf("GetAll = %v", all)
	}
}
