package modkit

import (
	"net/http"
	"testing"

	"flagwatch/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()

	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("defaults: name=%q prefix=%q, want empty", b.Name, b.Prefix)
	}
	if b.Ports != nil || b.SwaggerOn || len(b.Mw) != 0 {
		t.Fatalf("defaults not zero: %+v", b)
	}

	// Subrouter default is identity; should return what it was given
	var r httpkit.Router
	if r2 := b.Subrouter(r); r2 != r {
		t.Fatalf("default Subrouter should be identity")
	}

	// Register default is no-op; ensure it doesn't panic
	b.Register(r)
}

func TestBuild_Options(t *testing.T) {
	t.Parallel()

	mwA := func(next http.Handler) http.Handler { return next }
	type ports struct{ X int }

	registered := false
	b := Build(
		WithName("flags"),
		WithPrefix("/flags"),
		WithMiddlewares(mwA),
		WithPorts(ports{X: 7}),
		WithSwagger(true),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "flags" || b.Prefix != "/flags" {
		t.Fatalf("name/prefix = %q/%q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw count = %d", len(b.Mw))
	}
	if p, ok := b.Ports.(ports); !ok || p.X != 7 {
		t.Fatalf("ports = %#v", b.Ports)
	}
	if !b.SwaggerOn {
		t.Fatalf("swagger toggle lost")
	}

	b.Register(nil)
	if !registered {
		t.Fatalf("register hook not wired")
	}
}
