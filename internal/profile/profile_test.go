package profile

import (
	"strings"
	"testing"
)

const sampleDocument = `{
	"name": "Zach",
	"email": "zach@example.com",
	"bio": "Builds things.",
	"headshot": "https://example.com/me.jpg",
	"githubLink": "https://github.com/Zachkp",
	"projects": [
		{"id": 3, "title": "Mail", "description": "TUI mail", "link": "https://github.com/Zachkp/mail"},
		{"id": 1, "title": "Music", "description": "TUI music", "link": "https://youtu.be/xyz789"},
		{"id": 2, "title": "Recs", "description": "ML recs", "link": "https://example.com/recs", "image": "https://example.com/recs.png"}
	]
}`

func TestDecode_PreservesProjectOrder(t *testing.T) {
	p, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Zach" {
		t.Fatalf("Name = %q, want %q", p.Name, "Zach")
	}
	wantIDs := []int{3, 1, 2}
	if len(p.Projects) != len(wantIDs) {
		t.Fatalf("len(Projects) = %d, want %d", len(p.Projects), len(wantIDs))
	}
	for i, id := range wantIDs {
		if p.Projects[i].ID != id {
			t.Fatalf("Projects[%d].ID = %d, want %d", i, p.Projects[i].ID, id)
		}
	}
	if p.Projects[2].Image != "https://example.com/recs.png" {
		t.Fatalf("Projects[2].Image = %q", p.Projects[2].Image)
	}
}

func TestDecode_MissingOptionalFieldsAreAbsent(t *testing.T) {
	p, err := Decode([]byte(`{"name":"Zach","projects":[{"id":1,"title":"A","link":"https://example.com"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Email != "" || p.Headshot != "" || p.GitHubLink != "" || p.Projects[0].Image != "" {
		t.Fatalf("optional fields should be empty, got %+v", p)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "malformed json", doc: `{"name":`, want: "decode profile"},
		{name: "string id", doc: `{"name":"Z","projects":[{"id":"1","title":"A","link":"https://a.example"}]}`, want: "decode profile"},
		{name: "fractional id", doc: `{"name":"Z","projects":[{"id":1.5,"title":"A","link":"https://a.example"}]}`, want: "decode profile"},
		{name: "projects not an array", doc: `{"name":"Z","projects":{"id":1}}`, want: "decode profile"},
		{name: "missing name", doc: `{"projects":[]}`, want: "validate profile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDecode_KeepsProjectsWithMalformedLinks(t *testing.T) {
	doc := `{"name":"Zach","projects":[
		{"id":1,"title":"good","link":"https://github.com/alice/repo"},
		{"id":2,"title":"","link":"github.com/alice/repo"},
		{"id":3,"title":"watch","link":"www.youtube.com/watch?v=abc123"},
		{"id":4,"title":"broken","link":"not a url"},
		{"id":5,"title":"nolink"}
	]}`
	p, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Projects) != 5 {
		t.Fatalf("len(Projects) = %d, want 5", len(p.Projects))
	}
	if p.Projects[1].Link != "github.com/alice/repo" {
		t.Fatalf("Projects[1].Link = %q, want it kept verbatim", p.Projects[1].Link)
	}
	if p.Projects[3].Link != "not a url" {
		t.Fatalf("Projects[3].Link = %q, want it kept verbatim", p.Projects[3].Link)
	}
}

func TestDecode_MalformedOptionalFieldsBecomeAbsent(t *testing.T) {
	doc := `{"name":"Zach","email":"zach at example","headshot":"me.jpg","githubLink":"::",
		"projects":[{"id":1,"title":"A","link":"https://example.com","image":"not an image url"},
		{"id":2,"title":"B","link":"https://example.com","image":"https://example.com/b.png"}]}`
	p, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Email != "" || p.Headshot != "" || p.GitHubLink != "" {
		t.Fatalf("malformed header fields should be cleared, got %+v", p)
	}
	if p.Projects[0].Image != "" {
		t.Fatalf("Projects[0].Image = %q, want empty", p.Projects[0].Image)
	}
	if p.Projects[1].Image != "https://example.com/b.png" {
		t.Fatalf("Projects[1].Image = %q, want it kept", p.Projects[1].Image)
	}
}

func TestProjectByID_ReturnsFirstMatch(t *testing.T) {
	p := &Profile{Projects: []Project{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "other"},
		{ID: 1, Title: "duplicate"},
	}}
	got, ok := p.ProjectByID(1)
	if !ok {
		t.Fatal("expected project 1")
	}
	if got.Title != "first" {
		t.Fatalf("Title = %q, want %q", got.Title, "first")
	}
	if _, ok := p.ProjectByID(9); ok {
		t.Fatal("expected no project 9")
	}
}

func TestStore_PublishesOnce(t *testing.T) {
	s := NewStore()
	if _, ok := s.Profile(); ok {
		t.Fatal("new store should be empty")
	}
	if s.Set(nil) {
		t.Fatal("Set(nil) should not publish")
	}
	first := &Profile{Name: "first"}
	if !s.Set(first) {
		t.Fatal("first Set should publish")
	}
	if s.Set(&Profile{Name: "second"}) {
		t.Fatal("second Set should be ignored")
	}
	got, ok := s.Profile()
	if !ok || got != first {
		t.Fatalf("Profile() = %+v, %v; want first", got, ok)
	}
	if !s.Loaded() {
		t.Fatal("Loaded() = false, want true")
	}
}
