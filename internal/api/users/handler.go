package users

import (
	"net/http"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// ListUsers forwards GET /api/users.
var ListUsers = proxy.Endpoint{
	Name:     "list users",
	Method:   http.MethodGet,
	Path:     proxy.PathOf("/api/users"),
	Failure:  "Falha ao buscar usuários no serviço externo",
	Internal: "Erro interno ao processar a busca de usuários",
}

// CreateUser forwards POST /api/users. The backend answers 201 with the new user.
var CreateUser = proxy.Endpoint{
	Name:         "create user",
	Method:       http.MethodPost,
	Path:         proxy.PathOf("/api/users"),
	Body:         []proxy.Field{{Name: "name", String: true}},
	BodyError:    "Nome é obrigatório e deve ser uma string",
	Failure:      "Falha ao criar usuário no serviço externo",
	Internal:     "Erro interno ao processar a criação do usuário",
	Payload:      func(p proxy.Params) any { return p.Pick("name") },
	MirrorStatus: true,
}
