package justfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRequiredFromHeader_OnlyRequiredArgs(t *testing.T) {
	required, ok := requiredFromHeader("test TEST ENV='prod' +FILES *REST: build", "test")
	if !ok {
		t.Fatal("expected a match")
	}
	if want := []string{"TEST", "FILES"}; !reflect.DeepEqual(required, want) {
		t.Errorf("expected %v, got %v", want, required)
	}
}

func TestRequiredFromHeader_NonRecipeLines(t *testing.T) {
	cases := []string{
		"foo := 'bar'",
		"  test TEST:",
		"\ttest TEST:",
		"# test TEST:",
		"",
		"no-colon-here",
	}
	for _, line := range cases {
		if _, ok := requiredFromHeader(line, "test"); ok {
			t.Errorf("expected no match for %q", line)
		}
	}
}

func TestRequiredFromHeader_NameMismatchIsNoMatch(t *testing.T) {
	if _, ok := requiredFromHeader("other TEST:", "test"); ok {
		t.Error("expected no match for a different recipe name")
	}
}

func TestRequiredFromHeader_MatchWithZeroArgsIsAMatch(t *testing.T) {
	required, ok := requiredFromHeader("build: deps", "build")
	if !ok {
		t.Fatal("expected a match")
	}
	if len(required) != 0 {
		t.Errorf("expected zero required args, got %v", required)
	}
}

func TestRequiredFromHeader_ColonInDefaultValue(t *testing.T) {
	required, ok := requiredFromHeader("deploy ENV='prod:blue' TARGET: build", "deploy")
	if !ok {
		t.Fatal("expected a match")
	}
	if want := []string{"TARGET"}; !reflect.DeepEqual(required, want) {
		t.Errorf("expected %v, got %v", want, required)
	}
}

func TestRequiredFromHeader_SpacesInDefaultValue(t *testing.T) {
	required, ok := requiredFromHeader("test MSG='hello world' TARGET: run", "test")
	if !ok {
		t.Fatal("expected a match")
	}
	if want := []string{"TARGET"}; !reflect.DeepEqual(required, want) {
		t.Errorf("expected %v, got %v", want, required)
	}
}

func TestRequiredFromHeader_BacktickAndParenDefaults(t *testing.T) {
	required, ok := requiredFromHeader("bench N=`nproc`: run", "bench")
	if !ok {
		t.Fatal("expected a match")
	}
	if len(required) != 0 {
		t.Errorf("expected zero required args, got %v", required)
	}

	required, ok = requiredFromHeader(`gen OUT=("a:b" + ext) NAME:`, "gen")
	if !ok {
		t.Fatal("expected a match")
	}
	if want := []string{"NAME"}; !reflect.DeepEqual(required, want) {
		t.Errorf("expected %v, got %v", want, required)
	}
}

func TestRequiredFromHeader_VariadicAndPlus(t *testing.T) {
	required, ok := requiredFromHeader("build +FILES *REST TARGET: run", "build")
	if !ok {
		t.Fatal("expected a match")
	}
	if want := []string{"FILES", "TARGET"}; !reflect.DeepEqual(required, want) {
		t.Errorf("expected %v, got %v", want, required)
	}
}

func TestRequiredFromHeader_QuietPrefix(t *testing.T) {
	required, ok := requiredFromHeader("@deploy ENV:", "deploy")
	if !ok {
		t.Fatal("expected a match for @-prefixed recipe")
	}
	if want := []string{"ENV"}; !reflect.DeepEqual(required, want) {
		t.Errorf("expected %v, got %v", want, required)
	}
}

func TestRequiredArgs_ReadsMatchingRecipe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "justfile")
	src := `
build:
  echo build

test TEST ENV='prod':
  echo {{TEST}}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	args, err := RequiredArgs(path, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"TEST"}; !reflect.DeepEqual(args, want) {
		t.Errorf("expected %v, got %v", want, args)
	}
}

func TestRequiredArgs_MissingFile(t *testing.T) {
	if _, err := RequiredArgs("/nonexistent/justfile", "test"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
