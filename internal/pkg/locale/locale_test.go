package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_RedirectsPathsWithoutLocale(t *testing.T) {
	tests := []struct {
		path  string
		query string
		want  string
	}{
		{"/", "", "/en/"},
		{"/login", "", "/en/login"},
		{"/admin/orders", "", "/en/admin/orders"},
		{"/register", "ref=nav&x=1", "/en/register?ref=nav&x=1"},
		{"/enx", "", "/en/enx"},
		{"/EN/login", "", "/en/EN/login"},
		{"/fr/login", "", "/en/fr/login"},
		{"", "", "/en/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res := Resolve(tt.path, tt.query)
			assert.False(t, res.PassThrough())
			assert.False(t, res.Excluded)
			assert.Equal(t, Default, res.Locale)
			assert.Equal(t, tt.want, res.Redirect)
		})
	}
}

func TestResolve_IdempotentRedirect(t *testing.T) {
	paths := []string{"/", "/login", "/a/b/c", "//double", "/arabic", "/admin/", "/x?y"}

	for _, p := range paths {
		first := Resolve(p, "")
		require.False(t, first.PassThrough(), "path %q", p)

		second := Resolve(first.Redirect, "")
		assert.True(t, second.PassThrough(), "redirect target %q for %q must pass through", first.Redirect, p)
		assert.Equal(t, Default, second.Locale)
	}
}

func TestResolve_SupportedLocalesPassThrough(t *testing.T) {
	for _, l := range Supported() {
		for _, p := range []string{"/" + string(l), "/" + string(l) + "/", "/" + string(l) + "/anything", "/" + string(l) + "/admin/x"} {
			res := Resolve(p, "q=1")
			assert.True(t, res.PassThrough(), "path %q", p)
			assert.Equal(t, l, res.Locale)
		}
	}
}

func TestResolve_ExcludedPathsNeverRewritten(t *testing.T) {
	paths := []string{
		"/api/graphql",
		"/graphql",
		"/graphql/",
		"/static/app.css",
		"/assets/logo",
		"/metrics",
		"/healthz",
		"/favicon.ico",
		"/products/neon.png",
		"/deep/path/file.js",
	}

	for _, p := range paths {
		res := Resolve(p, "")
		assert.True(t, res.PassThrough(), "path %q", p)
		assert.True(t, res.Excluded, "path %q", p)
	}

	// prefix match is on the whole segment
	assert.False(t, Resolve("/apix", "").PassThrough())
}

func TestFromPath(t *testing.T) {
	assert.Equal(t, Arabic, FromPath("/ar/login"))
	assert.Equal(t, English, FromPath("/en"))
	assert.Equal(t, Default, FromPath("/login"))
	assert.Equal(t, Default, FromPath(""))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", Arabic.Direction())
	assert.True(t, Arabic.IsRTL())
	assert.Equal(t, "ltr", English.Direction())
}

func TestSwitch(t *testing.T) {
	assert.Equal(t, "/ar/login", Switch("/en/login", Arabic))
	assert.Equal(t, "/en/admin/x", Switch("/ar/admin/x", English))
	assert.Equal(t, "/ar/", Switch("/en", Arabic))
	assert.Equal(t, "/ar/vault", Switch("/vault", Arabic))
	assert.Equal(t, "/en/", Switch("/ar/", Locale("xx")))

	assert.Equal(t, Arabic, English.Other())
	assert.Equal(t, English, Arabic.Other())
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/ar/login", Path(Arabic, "/login"))
	assert.Equal(t, "/en/", Path(English, "/"))
	assert.Equal(t, "/en/admin", Path(Locale("zz"), "admin"))
}
