package middlewares

import (
	"net/http"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/utils"
	"github.com/gin-gonic/gin"
)

// SubHeader carries the signed in account id to the handlers.
const SubHeader = "sub"

// SignedIn rejects the request unless the identity provider holds a signed in
// account. On success any client supplied "sub" header is replaced with the
// account id.
func SignedIn(provider remote.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := provider.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  remote.ErrNotSignedIn.Error(),
			})
			c.Abort()
			return
		}

		c.Request.Header.Del(SubHeader)
		c.Request.Header.Add(SubHeader, account.Uid)

		c.Next()
	}
}
