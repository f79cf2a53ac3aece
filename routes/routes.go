package routes

import (
	"ringside/controllers"
	"ringside/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the route table needs
type Controllers struct {
	Combats *controllers.CombatController
	Gyms    *controllers.GymController
	Ratings *controllers.RatingController
	Users   *controllers.UserController
}

// SetupRoutes wires the HTTP surface. Reads are public; mutating endpoints
// require a valid access token, as do the per-user invitation listings.
func SetupRoutes(router *gin.Engine, ctrls Controllers, jwtSecret string) {
	authRequired := middlewares.AuthMiddleware(jwtSecret)

	// Gym surface. gin keeps one tree per method and a static segment cannot
	// sit next to a wildcard, so GET /gym/current is dispatched from the
	// param route instead of being registered on its own.
	router.POST("/gym", ctrls.Gyms.Create)
	router.GET("/gym", ctrls.Gyms.List)
	router.GET("/gym/:id", func(c *gin.Context) {
		if c.Param("id") == "current" {
			authRequired(c)
			if c.IsAborted() {
				return
			}
			ctrls.Gyms.Current(c)
			return
		}
		ctrls.Gyms.GetByID(c)
	})
	router.PUT("/gym/:id", authRequired, ctrls.Gyms.Update)
	router.DELETE("/gym/:id", authRequired, ctrls.Gyms.Delete)
	router.PUT("/gym/:id/oculto", authRequired, ctrls.Gyms.Hide)
	router.POST("/gym/login", ctrls.Gyms.Login)
	router.POST("/gym/refresh", ctrls.Gyms.Refresh)
	router.GET("/gym/:id/combats", ctrls.Combats.ByGym)

	// Combat surface
	router.POST("/combat", authRequired, ctrls.Combats.Create)
	router.GET("/combat", ctrls.Combats.List)
	router.GET("/combat/:id", ctrls.Combats.GetByID)
	router.PUT("/combat/:id", authRequired, ctrls.Combats.Update)
	router.DELETE("/combat/:id", authRequired, ctrls.Combats.Delete)
	router.PUT("/combat/:id/oculto", authRequired, ctrls.Combats.Hide)
	router.PUT("/combat/:id/respond", authRequired, ctrls.Combats.Respond)
	router.GET("/combat/:id/boxers", ctrls.Combats.Boxers)
	router.GET("/combat/:id/ratings", ctrls.Ratings.ByCombat)

	// Boxer surface, including the per-user combat listings
	router.POST("/user", ctrls.Users.Create)
	router.GET("/user", ctrls.Users.List)
	router.GET("/user/:id", ctrls.Users.GetByID)
	router.GET("/user/:id/combats/future", authRequired, ctrls.Combats.Future)
	router.GET("/user/:id/invitations", authRequired, ctrls.Combats.Invitations)
	router.GET("/user/:id/invitations/sent", authRequired, ctrls.Combats.Sent)
	router.GET("/user/:id/ratings", ctrls.Ratings.ForUser)

	// Ratings are append-only
	router.POST("/rating", authRequired, ctrls.Ratings.Create)
}
