package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Class
	}{
		{"/", ClassPublic},
		{"/products", ClassPublic},
		{"/auth/login", ClassPublic},
		{"/auth/register", ClassPublic},
		{"/api/auth/register", ClassPublic},
		{"/products/asus", ClassPublic},
		{"/products/asus/rog", ClassPublic},
		{"/media/products/1.jpg", ClassPublic},
		{"/static/site.css", ClassPublic},
		{"/static/app.js", ClassPublic},
		{"/logo.svg", ClassPublic},
		{"/admin/secret.png", ClassPublic},

		{"/api/auth/session", ClassAuthInternal},
		{"/api/auth/providers", ClassAuthInternal},
		{"/api/auth/callback/credentials", ClassAuthInternal},
		{"/api/auth/csrf", ClassAuthInternal},
		{"/api/auth/signout", ClassAuthInternal},

		{"/admin", ClassAdminProtected},
		{"/admin/brands", ClassAdminProtected},
		{"/api/brands", ClassAdminProtected},
		{"/api/brands/123/models", ClassAdminProtected},
		{"/api/models", ClassAdminProtected},
		{"/api/products/42", ClassAdminProtected},
		{"/api/users", ClassAdminProtected},
		{"/api/profile", ClassAdminProtected},

		{"/profile", ClassDefaultProtected},
		{"/product/42", ClassDefaultProtected},
		{"/products-archive", ClassDefaultProtected},
		{"/auth/login/extra", ClassDefaultProtected},
		{"/api/other", ClassDefaultProtected},
		{"/nowhere", ClassDefaultProtected},
		{"", ClassDefaultProtected},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestRules_OpenClassesPrecedeProtected(t *testing.T) {
	rules := Rules()
	seenProtected := false
	for _, r := range rules {
		if !r.Class.Open() {
			seenProtected = true
			continue
		}
		assert.False(t, seenProtected, "open rule %q listed after a protected rule", r.Name)
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := Rules()
	rules[0].Class = ClassAdminProtected
	assert.Equal(t, ClassPublic, Classify("/"))
}
