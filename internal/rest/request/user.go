package request

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

func (r *User) ToPayload() domain.RegisterUserPayload {
	return domain.RegisterUserPayload{
		Username: r.Username,
		Password: r.Password,
		Fullname: sanitize(r.Fullname),
	}
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *Login) ToPayload() domain.LoginPayload {
	return domain.LoginPayload{
		Username: r.Username,
		Password: r.Password,
	}
}

type RefreshToken struct {
	RefreshToken string `json:"refreshToken"`
}
