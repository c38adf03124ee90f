package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  --Foo--  ", "foo"},
		{"Test Post", "test-post"},
		{"Уже-latin-123", "latin-123"},
		{"UPPER CASE", "upper-case"},
		{"a  b   c", "a-b-c"},
		{"", ""},
		{"!!!", ""},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, ожидалось %q", c.in, got, c.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	// Слаг от слага не меняется.
	once := Slugify("Hello, World!")
	if twice := Slugify(once); twice != once {
		t.Fatalf("слагификация не идемпотентна: %q -> %q", once, twice)
	}
}
