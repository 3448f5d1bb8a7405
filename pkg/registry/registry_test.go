package registry

import (
	"testing"

	"github.com/JangRuBin2/rulang/pkg/ast"
)

func TestRegistryRecordsEndpointsInOrder(t *testing.T) {
	reg := NewRegistry()
	body := &ast.Block{}

	if err := reg.OnEndpoint("GET", "/a", nil, body); err != nil {
		t.Fatalf("OnEndpoint: %v", err)
	}
	if err := reg.OnEndpoint("POST", "/b", []string{"auth"}, body); err != nil {
		t.Fatalf("OnEndpoint: %v", err)
	}

	got := reg.Endpoints()
	if len(got) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(got))
	}
	if got[0].Method != "GET" || got[0].Path != "/a" {
		t.Errorf("unexpected first endpoint: %+v", got[0])
	}
	if got[1].Method != "POST" || len(got[1].Middlewares) != 1 || got[1].Middlewares[0] != "auth" {
		t.Errorf("unexpected second endpoint: %+v", got[1])
	}
}

func TestRegistryMiddlewareRedeclarationRejected(t *testing.T) {
	reg := NewRegistry()
	body := &ast.Block{}

	if err := reg.OnMiddleware("auth", body); err != nil {
		t.Fatalf("first OnMiddleware: %v", err)
	}
	if err := reg.OnMiddleware("auth", body); err == nil {
		t.Fatal("expected error redeclaring middleware \"auth\"")
	}

	m, ok := reg.Middleware("auth")
	if !ok || m.Name != "auth" {
		t.Errorf("expected to find declared middleware \"auth\", got %+v ok=%v", m, ok)
	}

	if _, ok := reg.Middleware("missing"); ok {
		t.Error("expected no middleware named \"missing\"")
	}
}

func TestRegistryUseAccumulatesAcrossCalls(t *testing.T) {
	reg := NewRegistry()

	if err := reg.OnUse([]string{"logging"}); err != nil {
		t.Fatalf("OnUse: %v", err)
	}
	if err := reg.OnUse([]string{"auth", "cors"}); err != nil {
		t.Fatalf("OnUse: %v", err)
	}

	want := []string{"logging", "auth", "cors"}
	got := reg.GlobalUse()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRegistryPortUnsetByDefault(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Port(); ok {
		t.Error("expected Port to report unset before any OnServer call")
	}

	if err := reg.OnServer(8080); err != nil {
		t.Fatalf("OnServer: %v", err)
	}
	port, ok := reg.Port()
	if !ok || port != 8080 {
		t.Errorf("expected port 8080, got %v ok=%v", port, ok)
	}
}
