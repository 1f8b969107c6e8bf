package service

import (
	"login_web/internal/repository"
)

type Services struct {
	User *UserService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		User: NewUserService(repos.User),
	}
}
