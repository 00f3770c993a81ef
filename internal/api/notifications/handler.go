package notifications

import (
	"net/http"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

var List = proxy.Endpoint{
	Name:       "get notifications",
	Method:     http.MethodGet,
	Path:       proxy.PathOf("/api/users/%s/notifications", "userId"),
	Query:      proxy.Fields("userId"),
	QueryError: "userId é obrigatório como parâmetro de query",
	Failure:    "Falha ao buscar notificações da API externa",
	Internal:   "Erro interno ao processar a busca de notificações",
}

// MarkRead marks one notification. The backend takes a list of ids; the proxy always
// sends a single-element list so each id succeeds or fails on its own.
var MarkRead = proxy.Endpoint{
	Name:      "mark notification read",
	Method:    http.MethodPost,
	Path:      proxy.PathOf("/api/users/%s/notifications/mark-read", "userId"),
	Body:      proxy.Fields("userId", "notificationId"),
	BodyError: "userId e notificationId são obrigatórios no corpo da requisição",
	Failure:   "Falha ao marcar notificação como lida na API externa",
	Internal:  "Erro interno ao processar a marcação de notificação como lida",
	Payload:   func(p proxy.Params) any { return []any{p["notificationId"]} },
	Reply:     proxy.Acknowledge,
}
