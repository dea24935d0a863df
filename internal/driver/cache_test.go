package driver_test

import (
	"context"
	"testing"

	"flint/internal/driver"
	"flint/internal/token"
)

func openTestCache(t *testing.T) *driver.TokenCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenTokenCache("flint")
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	path := writeTestFile(t, "main.fl", "fn main() { let x = 1; }\n")
	opts := driver.Options{Cache: cache}

	first, err := driver.RunOnFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.FromCache {
		t.Fatal("first run must be a miss")
	}

	second, err := driver.RunOnFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache {
		t.Fatal("second run must hit the cache")
	}
	if len(second.Tokens) != len(first.Tokens) {
		t.Fatalf("token counts differ: %d vs %d", len(second.Tokens), len(first.Tokens))
	}
	for i := range first.Tokens {
		if first.Tokens[i].Kind != second.Tokens[i].Kind ||
			first.Tokens[i].RawOff != second.Tokens[i].RawOff {
			t.Fatalf("token %d differs: %+v vs %+v", i, first.Tokens[i], second.Tokens[i])
		}
	}
	// офсеты из кеша резолвятся через пересозданную арену
	if got := second.Tokens[0].Value(second.Manager); got != "fn" {
		t.Errorf("cached token value = %q, want fn", got)
	}
}

func TestCacheSkipsFilesWithErrors(t *testing.T) {
	cache := openTestCache(t)
	path := writeTestFile(t, "bad.fl", "let s = \"oops")
	opts := driver.Options{Cache: cache}

	for run := 0; run < 2; run++ {
		res, err := driver.RunOnFile(context.Background(), path, opts)
		if err != nil {
			t.Fatal(err)
		}
		if res.FromCache {
			t.Fatal("files with errors must never be served from cache")
		}
		if !res.HasErrors || len(res.Errors) == 0 {
			t.Fatal("error details must be rebuilt on every run")
		}
	}
}

func TestCacheDistinguishesTriviaMode(t *testing.T) {
	cache := openTestCache(t)
	path := writeTestFile(t, "m.fl", "  let x = 1\n")

	fast, err := driver.RunOnFile(context.Background(), path, driver.Options{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if fast.FromCache {
		t.Fatal("first fast run must miss")
	}

	// режимы не делят ключ: trivia-прогон не должен увидеть fast-кеш
	trivia, err := driver.RunOnFile(context.Background(), path,
		driver.Options{Cache: cache, PreserveTrivia: true})
	if err != nil {
		t.Fatal(err)
	}
	if trivia.FromCache {
		t.Fatal("trivia run must not hit the fast-mode entry")
	}
	if len(trivia.Tokens[0].Leading) == 0 {
		t.Error("trivia run must carry trivia")
	}

	again, err := driver.RunOnFile(context.Background(), path,
		driver.Options{Cache: cache, PreserveTrivia: true})
	if err != nil {
		t.Fatal(err)
	}
	if !again.FromCache {
		t.Fatal("repeat trivia run must hit")
	}
	if len(again.Tokens[0].Leading) == 0 {
		t.Error("cached trivia must survive the round trip")
	}
}

func TestCacheInvalidatedByContentChange(t *testing.T) {
	cache := openTestCache(t)
	opts := driver.Options{Cache: cache}

	path := writeTestFile(t, "v.fl", "let a = 1;")
	if _, err := driver.RunOnFile(context.Background(), path, opts); err != nil {
		t.Fatal(err)
	}

	changed := writeTestFile(t, "v2.fl", "let a = 2;")
	res, err := driver.RunOnFile(context.Background(), changed, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Fatal("different content must miss")
	}
	if res.Tokens[3].Kind != token.LitInt {
		t.Errorf("token 3 = %v, want LitInt", res.Tokens[3].Kind)
	}
}

func TestCacheDropAll(t *testing.T) {
	cache := openTestCache(t)
	path := writeTestFile(t, "d.fl", "let a = 1;")
	opts := driver.Options{Cache: cache}

	if _, err := driver.RunOnFile(context.Background(), path, opts); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	res, err := driver.RunOnFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Fatal("DropAll must empty the cache")
	}
}
