package follows

import (
	"net/http"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// Followers lists who follows userId.
var Followers = proxy.Endpoint{
	Name:       "get followers",
	Method:     http.MethodGet,
	Path:       proxy.PathOf("/api/users/%s/followers", "userId"),
	Query:      proxy.Fields("userId"),
	QueryError: "User ID é obrigatório como parâmetro de query",
	Failure:    "Falha ao carregar seguidores da API externa",
	Internal:   "Erro interno ao processar a busca de seguidores",
}

// Following lists whom userId follows.
var Following = proxy.Endpoint{
	Name:       "get following",
	Method:     http.MethodGet,
	Path:       proxy.PathOf("/api/users/%s/following", "userId"),
	Query:      proxy.Fields("userId"),
	QueryError: "User ID é obrigatório como parâmetro de query",
	Failure:    "Falha ao carregar quem o usuário segue da API externa",
	Internal:   "Erro interno ao processar a busca de quem o usuário segue",
}

// Follow makes currentUserId follow targetUserId.
var Follow = proxy.Endpoint{
	Name:      "follow",
	Method:    http.MethodPost,
	Path:      proxy.PathOf("/api/follows/%s/follow/%s", "currentUserId", "targetUserId"),
	Body:      proxy.Fields("currentUserId", "targetUserId"),
	BodyError: "currentUserId e targetUserId são obrigatórios no corpo da requisição",
	Failure:   "Falha ao seguir usuário na API externa",
	Internal:  "Erro interno ao processar a ação de seguir usuário",
	Reply:     proxy.Acknowledge,
}

// RemoveFollow covers both ways of deleting an edge. "unfollow" removes the edge where
// the current user is the follower; "removeFollower" removes the edge where the current
// user is the one being followed, so the ids swap places in the backend path.
var RemoveFollow = proxy.Switch{
	Field:   "actionType",
	Missing: "actionType é obrigatório no corpo da requisição (ex: 'unfollow' ou 'removeFollower')",
	Invalid: "actionType inválido",
	Variants: map[string]proxy.Endpoint{
		"unfollow": {
			Name:      "unfollow",
			Method:    http.MethodDelete,
			Path:      proxy.PathOf("/api/follows/%s/unfollow/%s", "currentUserId", "targetUserId"),
			Body:      proxy.Fields("currentUserId", "targetUserId"),
			BodyError: "Para actionType 'unfollow', currentUserId e targetUserId são obrigatórios",
			Failure:   "Falha ao processar unfollow na API externa",
			Internal:  "Erro interno ao processar a remoção de follow",
			Reply:     proxy.Acknowledge,
		},
		"removeFollower": {
			Name:      "remove follower",
			Method:    http.MethodDelete,
			Path:      proxy.PathOf("/api/follows/%s/unfollow/%s", "followerId", "currentUserId"),
			Body:      proxy.Fields("followerId", "currentUserId"),
			BodyError: "Para actionType 'removeFollower', followerId e currentUserId são obrigatórios",
			Failure:   "Falha ao processar removeFollower na API externa",
			Internal:  "Erro interno ao processar a remoção de follow",
			Reply:     proxy.Acknowledge,
		},
	},
}
