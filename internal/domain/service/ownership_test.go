package service

import (
	"testing"

	"bookmarks/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal *entity.Principal
		ownerID   int64
		want      Decision
	}{
		{name: "owner is allowed", principal: &entity.Principal{ID: 1, Email: "a@x.com"}, ownerID: 1, want: Allowed},
		{name: "other user is denied", principal: &entity.Principal{ID: 1, Email: "a@x.com"}, ownerID: 2, want: Denied},
		{name: "missing principal is denied", principal: nil, ownerID: 1, want: Denied},
		{name: "zero id does not match real owner", principal: &entity.Principal{}, ownerID: 7, want: Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.principal, tt.ownerID))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allowed", Allowed.String())
	assert.Equal(t, "denied", Denied.String())
}
