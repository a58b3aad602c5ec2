package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		target  string
		page    int
		perPage int
		offset  int
	}{
		{"/x", 1, 10, 0},
		{"/x?page=3&per_page=20", 3, 20, 40},
		{"/x?page=2&pageSize=5", 2, 5, 5},
		{"/x?page=0&per_page=-1", 1, 10, 0},
		{"/x?per_page=9999", 1, 100, 0},
		{"/x?page=abc", 1, 10, 0},
	}
	for _, c := range cases {
		p := resolveFor(t, c.target)
		if p.Page != c.page || p.PerPage != c.perPage || p.Offset != c.offset {
			t.Errorf("%s: got page=%d perPage=%d offset=%d, want %d/%d/%d",
				c.target, p.Page, p.PerPage, p.Offset, c.page, c.perPage, c.offset)
		}
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(25, 2, 10)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages got %d", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("expected both neighbors on middle page: %+v", p)
	}

	// Empty sets still report one page so clients always render page 1.
	p = BuildPaginationFromPage(0, 1, 10)
	if p.TotalPages != 1 || p.HasNext || p.HasPrev {
		t.Fatalf("expected single empty page got %+v", p)
	}
}
