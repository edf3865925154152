package project_test

import (
	"reflect"
	"testing"

	"github.com/cortexscaffold/cortexscaffold/domain/project"
)

func TestNewSpec(t *testing.T) {
	spec, err := project.NewSpec(
		"My Cool API!!",
		"demo project",
		[]string{"Auth", "User Service"},
		"Jane Doe",
		2026,
		project.Options{InitGit: true, CreateVenv: true},
	)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}

	if spec.KebabName != "my-cool-api" {
		t.Errorf("KebabName = %q, want %q", spec.KebabName, "my-cool-api")
	}
	if spec.PackageName != "my_cool_api" {
		t.Errorf("PackageName = %q, want %q", spec.PackageName, "my_cool_api")
	}
	if spec.RawName != "My Cool API!!" {
		t.Errorf("RawName = %q, want the input preserved", spec.RawName)
	}

	wantModules := []project.Module{
		{RawName: "Auth", SnakeName: "auth"},
		{RawName: "User Service", SnakeName: "user_service"},
	}
	if !reflect.DeepEqual(spec.Modules, wantModules) {
		t.Errorf("Modules = %+v, want %+v", spec.Modules, wantModules)
	}

	if got := spec.ModuleNames(); !reflect.DeepEqual(got, []string{"auth", "user_service"}) {
		t.Errorf("ModuleNames() = %v", got)
	}
	if got := spec.RawModuleNames(); !reflect.DeepEqual(got, []string{"Auth", "User Service"}) {
		t.Errorf("RawModuleNames() = %v", got)
	}
}

func TestNewSpecRejectsEmptyCanonicalForms(t *testing.T) {
	if _, err := project.NewSpec("!!!", "", nil, "", 2026, project.Options{}); err == nil {
		t.Error("expected an error for a project name with no usable characters")
	}
	if _, err := project.NewSpec("ok", "", []string{"!!!"}, "", 2026, project.Options{}); err == nil {
		t.Error("expected an error for a module name with no usable characters")
	}
}
