// Package router wires the HTTP routes of the dashboard service.
package router

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "stock_dashboard/internal/feature/auth/transport/handler"
	companyhandler "stock_dashboard/internal/feature/companies/transport/handler"
	dividendhandler "stock_dashboard/internal/feature/dividends/transport/handler"
	quotehandler "stock_dashboard/internal/feature/quotes/transport/handler"
	"stock_dashboard/internal/platform/http/handler"
	jwtmw "stock_dashboard/internal/platform/jwt"
	"stock_dashboard/web"
)

// NewRouter builds the Gin engine with all routes registered.
func NewRouter(auth *authhandler.AuthHandler, dividends *dividendhandler.DividendHandler,
	quotes *quotehandler.QuoteHandler, companies *companyhandler.CompanyHandler,
	jwtSecret string) *gin.Engine {
	r := gin.Default()

	// Dashboard page and embedded assets
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.FS, "templates/*.tmpl")))
	staticFS, _ := fs.Sub(web.FS, "static")
	r.StaticFS("/static", http.FS(staticFS))
	r.GET("/", handler.Dashboard)

	// No auth required
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Data API used by the dashboard page
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/companies", companies.Search)
		apiGroup.GET("/companies/:code/dividends", dividends.GetDividends)
		apiGroup.GET("/companies/:code/dividends/history", dividends.GetDividendHistory)
		apiGroup.GET("/quotes/:symbol", quotes.GetQuote)
		apiGroup.GET("/quotes/:symbol/history", quotes.GetHistory)
	}

	// Admin operations require a JWT
	admin := r.Group("/api/admin")
	admin.Use(jwtmw.AuthRequired(jwtSecret))
	{
		admin.POST("/companies/refresh", companies.Refresh)
	}

	return r
}
