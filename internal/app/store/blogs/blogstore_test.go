package blogstore_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	blogstore "github.com/inkpost/inkpost/internal/app/store/blogs"
	"github.com/inkpost/inkpost/internal/domain/models"
	"github.com/inkpost/inkpost/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validPost() models.BlogPost {
	return models.BlogPost{
		Title:       "First Post",
		Description: "A description",
		Category:    "engineering",
		ImageURL:    "http://example.com/1.png",
		Status:      models.StatusDraft,
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, validPost())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID.IsZero() {
		t.Error("created post should have an id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("created post should have timestamps")
	}

	got, err := s.GetByID(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "First Post" || got.Category != "engineering" {
		t.Errorf("GetByID() = %+v, want fields of the created post", got)
	}
	if got.Status != models.StatusDraft {
		t.Errorf("status = %q, want %q", got.Status, models.StatusDraft)
	}
}

func TestStore_CreateValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	t.Run("whitespace-only fields rejected", func(t *testing.T) {
		post := validPost()
		post.Title = "   "
		post.Description = "\t"

		_, err := s.Create(ctx, post)
		var ve *blogstore.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Create() error = %v, want *blogstore.ValidationError", err)
		}
		msgs := strings.Join(ve.Messages(), "; ")
		if !strings.Contains(msgs, "title is required") {
			t.Errorf("messages = %q, want title requirement", msgs)
		}
		if !strings.Contains(msgs, "description is required") {
			t.Errorf("messages = %q, want description requirement", msgs)
		}
	})

	t.Run("title over 100 characters rejected", func(t *testing.T) {
		post := validPost()
		post.Title = strings.Repeat("x", 101)

		_, err := s.Create(ctx, post)
		var ve *blogstore.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Create() error = %v, want *blogstore.ValidationError", err)
		}
		if !strings.Contains(ve.Error(), "cannot exceed 100 characters") {
			t.Errorf("error = %q, want title length message", ve.Error())
		}
	})

	t.Run("invalid status rejected and not persisted", func(t *testing.T) {
		post := validPost()
		post.Status = "archived"

		if _, err := s.Create(ctx, post); err == nil {
			t.Fatal("Create() error = nil, want validation error")
		}

		posts, err := s.List(ctx, blogstore.Filter{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for _, p := range posts {
			if p.Status == "archived" {
				t.Error("invalid post should not be persisted")
			}
		}
	})

	t.Run("empty status defaults to draft", func(t *testing.T) {
		post := validPost()
		post.Status = ""

		created, err := s.Create(ctx, post)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if created.Status != models.StatusDraft {
			t.Errorf("status = %q, want %q", created.Status, models.StatusDraft)
		}
	})

	t.Run("values stored trimmed", func(t *testing.T) {
		post := validPost()
		post.Title = "  Padded Title  "

		created, err := s.Create(ctx, post)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if created.Title != "Padded Title" {
			t.Errorf("title = %q, want trimmed value", created.Title)
		}
	})
}

func TestStore_GetByID_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	t.Run("malformed id", func(t *testing.T) {
		_, err := s.GetByID(ctx, "not-a-hex-id")
		if !errors.Is(err, blogstore.ErrInvalidID) {
			t.Errorf("GetByID() error = %v, want blogstore.ErrInvalidID", err)
		}
	})

	t.Run("well-formed but absent id", func(t *testing.T) {
		_, err := s.GetByID(ctx, primitive.NewObjectID().Hex())
		if !errors.Is(err, blogstore.ErrNotFound) {
			t.Errorf("GetByID() error = %v, want blogstore.ErrNotFound", err)
		}
	})
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, validPost())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("partial update flips status and advances updatedAt", func(t *testing.T) {
		time.Sleep(10 * time.Millisecond)

		status := models.StatusPublished
		updated, err := s.Update(ctx, created.ID.Hex(), blogstore.Patch{Status: &status})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Status != models.StatusPublished {
			t.Errorf("status = %q, want %q", updated.Status, models.StatusPublished)
		}
		if !updated.UpdatedAt.After(created.UpdatedAt) {
			t.Error("updatedAt should advance on update")
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Error("createdAt must not change on update")
		}
		if updated.Title != created.Title {
			t.Error("untouched fields must be preserved")
		}
	})

	t.Run("touched field is re-validated", func(t *testing.T) {
		long := strings.Repeat("x", 101)
		_, err := s.Update(ctx, created.ID.Hex(), blogstore.Patch{Title: &long})
		var ve *blogstore.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Update() error = %v, want *blogstore.ValidationError", err)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		bad := "pending"
		_, err := s.Update(ctx, created.ID.Hex(), blogstore.Patch{Status: &bad})
		var ve *blogstore.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Update() error = %v, want *blogstore.ValidationError", err)
		}
	})

	t.Run("field messages keep a stable order", func(t *testing.T) {
		empty := ""
		want := []string{
			"title is required",
			"description is required",
			"category is required",
		}
		for i := 0; i < 5; i++ {
			_, err := s.Update(ctx, created.ID.Hex(), blogstore.Patch{
				Title:       &empty,
				Description: &empty,
				Category:    &empty,
			})
			var ve *blogstore.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Update() error = %v, want *blogstore.ValidationError", err)
			}
			got := ve.Messages()
			if len(got) != len(want) {
				t.Fatalf("Messages() = %v, want %v", got, want)
			}
			for j := range want {
				if got[j] != want[j] {
					t.Fatalf("Messages() = %v, want %v", got, want)
				}
			}
		}
	})

	t.Run("absent id", func(t *testing.T) {
		status := models.StatusDraft
		_, err := s.Update(ctx, primitive.NewObjectID().Hex(), blogstore.Patch{Status: &status})
		if !errors.Is(err, blogstore.ErrNotFound) {
			t.Errorf("Update() error = %v, want blogstore.ErrNotFound", err)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		status := models.StatusDraft
		_, err := s.Update(ctx, "zzz", blogstore.Patch{Status: &status})
		if !errors.Is(err, blogstore.ErrInvalidID) {
			t.Errorf("Update() error = %v, want blogstore.ErrInvalidID", err)
		}
	})
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, validPost())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Delete(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Second delete of the same id reports not found, not some other error.
	if err := s.Delete(ctx, created.ID.Hex()); !errors.Is(err, blogstore.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want blogstore.ErrNotFound", err)
	}

	if err := s.Delete(ctx, "not-hex"); !errors.Is(err, blogstore.ErrInvalidID) {
		t.Errorf("Delete() error = %v, want blogstore.ErrInvalidID", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.BlogPost{
		{Title: "Older Draft", Description: "d", Category: "go", ImageURL: "http://x/1.png", Status: models.StatusDraft},
		{Title: "Published", Description: "d", Category: "go", ImageURL: "http://x/2.png", Status: models.StatusPublished},
		{Title: "Newer Draft", Description: "d", Category: "news", ImageURL: "http://x/3.png", Status: models.StatusDraft},
	}
	for _, p := range seed {
		if _, err := s.Create(ctx, p); err != nil {
			t.Fatalf("Create(%q) error = %v", p.Title, err)
		}
		time.Sleep(5 * time.Millisecond) // distinct created_at for ordering
	}

	t.Run("no filter returns all, newest first", func(t *testing.T) {
		posts, err := s.List(ctx, blogstore.Filter{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(posts) != 3 {
			t.Fatalf("List() returned %d posts, want 3", len(posts))
		}
		for i := 1; i < len(posts); i++ {
			if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
				t.Error("posts should be ordered by descending creation time")
			}
		}
		if posts[0].Title != "Newer Draft" {
			t.Errorf("first post = %q, want newest", posts[0].Title)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		posts, err := s.List(ctx, blogstore.Filter{Status: models.StatusDraft})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("List(draft) returned %d posts, want 2", len(posts))
		}
		for _, p := range posts {
			if p.Status != models.StatusDraft {
				t.Errorf("post %q status = %q, want draft", p.Title, p.Status)
			}
		}
	})

	t.Run("category and status filters combine", func(t *testing.T) {
		posts, err := s.List(ctx, blogstore.Filter{Status: models.StatusDraft, Category: "go"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(posts) != 1 || posts[0].Title != "Older Draft" {
			t.Errorf("List(draft, go) = %v, want only Older Draft", posts)
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		posts, err := s.List(ctx, blogstore.Filter{Category: "missing"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if posts == nil {
			t.Error("List() should return an empty slice, not nil")
		}
		if len(posts) != 0 {
			t.Errorf("List() returned %d posts, want 0", len(posts))
		}
	})
}
