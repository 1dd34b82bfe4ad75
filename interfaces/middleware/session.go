package middleware

import (
	"github.com/gin-gonic/gin"

	"trending-board/domain/model"
	"trending-board/usecase"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "tb_session"

const sessionContextKey = "session"

// Session reconstructs the per-user session from the cookie and stores it in
// the request context. It never aborts; gating is the renderer's decision.
func Session(auth usecase.IAuthUsecase) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := &model.Session{}
		if token, err := ctx.Cookie(SessionCookie); err == nil && token != "" {
			if parsed, err := auth.ParseSessionToken(token); err == nil {
				sess = parsed
			}
		}
		ctx.Set(sessionContextKey, sess)
		ctx.Next()
	}
}

// SessionFrom returns the session placed by the middleware, or an empty one
// for routes outside the session chain.
func SessionFrom(ctx *gin.Context) *model.Session {
	if v, ok := ctx.Get(sessionContextKey); ok {
		if sess, ok := v.(*model.Session); ok {
			return sess
		}
	}
	return &model.Session{}
}
