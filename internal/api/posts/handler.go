package posts

import (
	"net/http"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// AllPosts is the global feed.
var AllPosts = proxy.Endpoint{
	Name:     "get all posts",
	Method:   http.MethodGet,
	Path:     proxy.PathOf("/api/posts"),
	Failure:  "Falha ao carregar feed geral da API externa",
	Internal: "Erro interno ao processar a busca de todos os posts",
}

// UserPosts lists the posts written by userId.
var UserPosts = proxy.Endpoint{
	Name:       "get user posts",
	Method:     http.MethodGet,
	Path:       proxy.PathOf("/api/posts/user/%s", "userId"),
	Query:      proxy.Fields("userId"),
	QueryError: "userId é obrigatório como parâmetro de query",
	Failure:    "Falha ao carregar posts do usuário da API externa",
	Internal:   "Erro interno ao processar a busca de posts do usuário",
}

// CreatePost may be answered with the new post, with 201 and no body, or with 204.
var CreatePost = proxy.Endpoint{
	Name:          "create post",
	Method:        http.MethodPost,
	Path:          proxy.PathOf("/api/posts"),
	Body:          proxy.Fields("userId", "content"),
	BodyError:     "userId e content são obrigatórios no corpo da requisição",
	Failure:       "Falha ao criar post na API externa",
	Internal:      "Erro interno ao processar a criação do post",
	Payload:       func(p proxy.Params) any { return p.Pick("userId", "content") },
	Reply:         proxy.ForwardOrAcknowledge,
	MirrorStatus:  true,
	Created:       "Post criado com sucesso (sem corpo de resposta da API externa)",
	CreatedNoJSON: "Post criado, mas resposta da API externa não era JSON.",
}

// DeletePost takes the post id from the query and the author id from the body.
var DeletePost = proxy.Endpoint{
	Name:       "delete post",
	Method:     http.MethodDelete,
	Path:       proxy.PathOf("/api/posts/%s", "postId"),
	Query:      proxy.Fields("postId"),
	QueryError: "postId é obrigatório como parâmetro de query",
	Body:       proxy.Fields("userId"),
	BodyError:  "userId é obrigatório no corpo da requisição para deletar o post",
	Failure:    "Falha ao deletar post na API externa",
	Internal:   "Erro interno ao processar a deleção do post",
	Payload:    func(p proxy.Params) any { return p.Pick("userId") },
	Reply:      proxy.Acknowledge,
}
