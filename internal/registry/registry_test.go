package registry

import (
	"context"
	"testing"
)

type fakeFrontend struct{ id string }

func (f fakeFrontend) ID() string { return f.id }
func (f fakeFrontend) Title() string { return "Fake " + f.id }
func (f fakeFrontend) Run(context.Context, Request) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Frontend { return fakeFrontend{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("Exists() = false after Register()")
	}

	fe, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if fe.ID() != "zz-fake" {
		t.Errorf("ID() = %q, expected %q", fe.ID(), "zz-fake")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" && info.Title == "Fake zz-fake" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include the registered front end")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Frontend { return fakeFrontend{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate ID did not panic")
		}
	}()
	Register("zz-dup", func() Frontend { return fakeFrontend{id: "zz-dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("Create(\"nope\") error = nil, expected an error")
	}
}
