package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

func TestRegisterUserPayload_Validate(t *testing.T) {
	valid := domain.RegisterUserPayload{Username: "dicoding", Password: "secret", Fullname: "Dicoding Indonesia"}

	tests := []struct {
		name   string
		mutate func(p *domain.RegisterUserPayload)
		want   error
	}{
		{name: "valid", mutate: func(p *domain.RegisterUserPayload) {}},
		{name: "missing password", mutate: func(p *domain.RegisterUserPayload) { p.Password = "" }, want: domain.ErrRegisterUserMissingProperty},
		{name: "username too long", mutate: func(p *domain.RegisterUserPayload) { p.Username = strings.Repeat("a", 51) }, want: domain.ErrUsernameLimit},
		{name: "username with space", mutate: func(p *domain.RegisterUserPayload) { p.Username = "dico ding" }, want: domain.ErrUsernameRestrictedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginPayload_Validate(t *testing.T) {
	assert.NoError(t, domain.LoginPayload{Username: "dicoding", Password: "secret"}.Validate())
	assert.ErrorIs(t, domain.LoginPayload{Username: "dicoding"}.Validate(), domain.ErrLoginMissingProperty)
}
