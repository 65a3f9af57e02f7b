package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "token"

// tokenTTL matches the source contract: sessions last a year.
const tokenTTL = 365 * 24 * time.Hour

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Auth issues and verifies the signed session token carried in the
// session cookie. Cookie attributes tighten in production: Secure is
// set and SameSite switches to None so the credentialed cross-site
// frontend can send it.
type Auth struct {
	secret     []byte
	production bool
}

func NewAuth(secret string, production bool) *Auth {
	return &Auth{secret: []byte(secret), production: production}
}

func (a *Auth) Issue(email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *Auth) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func (a *Auth) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(a.sameSite())
	c.SetCookie(CookieName, token, int(tokenTTL.Seconds()), "/", "", a.production, true)
}

func (a *Auth) ClearCookie(c *gin.Context) {
	c.SetSameSite(a.sameSite())
	c.SetCookie(CookieName, "", -1, "/", "", a.production, true)
}

func (a *Auth) sameSite() http.SameSite {
	if a.production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// RequireToken verifies the session cookie before the route runs.
// A missing cookie is 401, a bad or expired token is 403; both abort
// the chain. On success the claim email is stashed in the context.
func (a *Auth) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			c.Abort()
			return
		}

		claims, err := a.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
