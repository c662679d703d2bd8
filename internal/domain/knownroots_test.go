package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/raestrada95/repotopdf/internal/model"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		source    string
		wantOwner string
		wantName  string
	}{
		{source: "https://github.com/sveltejs/svelte.git", wantOwner: "sveltejs", wantName: "svelte"},
		{source: "https://github.com/sveltejs/svelte", wantOwner: "sveltejs", wantName: "svelte"},
		{source: "https://gitlab.com/group/sub/project.git/", wantOwner: "sub", wantName: "project"},
		{source: "git@github.com:vuejs/vue.git", wantOwner: "vuejs", wantName: "vue"},
		{source: "ssh://git@host.example:2222/acme/tools.git", wantOwner: "acme", wantName: "tools"},
		{source: "/home/user/src/react", wantOwner: "src", wantName: "react"},
		{source: "./project", wantName: "project"},
		{source: "  https://github.com/angular/angular  ", wantOwner: "angular", wantName: "angular"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			repo, err := ParseRepository(tt.source)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOwner, repo.Owner)
			assert.Equal(t, tt.wantName, repo.Name)
		})
	}
}

func TestParseRepository_Invalid(t *testing.T) {
	for _, source := range []string{"", "   ", "https://github.com/", "/"} {
		_, err := ParseRepository(source)
		require.ErrorIs(t, err, ErrInvalidSource, "source %q", source)
	}
}

func TestKnownRoots_Lookup(t *testing.T) {
	known := DefaultKnownRoots()

	docs, ok := known.Lookup(m.Repository{Owner: "SvelteJS", Name: "Svelte"})
	require.True(t, ok)
	assert.Equal(t, m.Path("documentation/docs"), docs)

	docs, ok = known.Lookup(m.Repository{Owner: "angular", Name: "angular"})
	require.True(t, ok)
	assert.Equal(t, m.Path("aio/content"), docs)

	_, ok = known.Lookup(m.Repository{Owner: "acme", Name: "widgets"})
	assert.False(t, ok)
}

func TestKnownRoots_With(t *testing.T) {
	base := DefaultKnownRoots()

	merged := base.With(map[string]string{
		"Acme/Widgets":  "manual",
		"vuejs/vue":     "src/docs",
		"reactjs/react": "",
	})

	docs, ok := merged.Lookup(m.Repository{Owner: "acme", Name: "widgets"})
	require.True(t, ok)
	assert.Equal(t, m.Path("manual"), docs)

	docs, ok = merged.Lookup(m.Repository{Owner: "vuejs", Name: "vue"})
	require.True(t, ok)
	assert.Equal(t, m.Path("src/docs"), docs)

	_, ok = merged.Lookup(m.Repository{Owner: "reactjs", Name: "react"})
	assert.False(t, ok)

	// The receiver is left untouched.
	docs, ok = base.Lookup(m.Repository{Owner: "vuejs", Name: "vue"})
	require.True(t, ok)
	assert.Equal(t, m.Path("docs"), docs)
}

func TestKnownRoots_Clone(t *testing.T) {
	known := DefaultKnownRoots()

	clone := known.Clone()
	clone["sveltejs/svelte"] = "other"

	assert.Equal(t, m.Path("documentation/docs"), known["sveltejs/svelte"])
	assert.Len(t, clone, len(known))
}
