// Package view assembles the multitemplate renderer: every page key is
// layouts + includes + one view file, sharing a single FuncMap.
package view

import (
	"fmt"
	"html/template"
	"net/url"
	"path/filepath"
	"time"

	"barcabuzz/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

// LoadTemplates builds the renderer from templatesDir. Keys match what
// handlers pass to c.HTML.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(includes)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			case *time.Time:
				if v == nil {
					return ""
				}
				timeVal = *v
			default:
				return ""
			}

			duration := time.Since(timeVal)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return fmt.Sprintf("%ds ago", seconds)
			} else if seconds < 3600 {
				return fmt.Sprintf("%dm ago", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%dh ago", seconds/3600)
			} else if seconds < 2592000 {
				return fmt.Sprintf("%dd ago", seconds/86400)
			} else if seconds < 31536000 {
				return fmt.Sprintf("%dmo ago", seconds/2592000)
			}
			return fmt.Sprintf("%dy ago", seconds/31536000)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"markdown": func(s string) template.HTML {
			return utils.RenderMarkdown(s)
		},
		"readingTime": func(s string) string {
			return utils.ReadingTime(s)
		},
		"excerpt": func(excerpt, text string) string {
			return utils.Excerpt(excerpt, text, 150)
		},
		"urlquery": func(s string) string {
			return url.QueryEscape(s)
		},
	}

	// Pages
	r.AddFromFilesFuncs("pages/home.html", funcMap, assemble(templatesDir+"/views/pages/home.html")...)
	r.AddFromFilesFuncs("pages/about.html", funcMap, assemble(templatesDir+"/views/pages/about.html")...)

	// Posts
	r.AddFromFilesFuncs("posts/list.html", funcMap, assemble(templatesDir+"/views/posts/list.html")...)
	r.AddFromFilesFuncs("posts/detail.html", funcMap, assemble(templatesDir+"/views/posts/detail.html")...)
	r.AddFromFilesFuncs("posts/form.html", funcMap, assemble(templatesDir+"/views/posts/form.html")...)
	r.AddFromFilesFuncs("posts/drafts.html", funcMap, assemble(templatesDir+"/views/posts/drafts.html")...)
	r.AddFromFilesFuncs("posts/category.html", funcMap, assemble(templatesDir+"/views/posts/category.html")...)
	r.AddFromFilesFuncs("posts/tag.html", funcMap, assemble(templatesDir+"/views/posts/tag.html")...)
	r.AddFromFilesFuncs("posts/search.html", funcMap, assemble(templatesDir+"/views/posts/search.html")...)
	r.AddFromFilesFuncs("posts/comment_form.html", funcMap, assemble(templatesDir+"/views/posts/comment_form.html")...)

	// Dashboards
	r.AddFromFilesFuncs("dashboards/user.html", funcMap, assemble(templatesDir+"/views/dashboards/user.html")...)
	r.AddFromFilesFuncs("dashboards/admin.html", funcMap, assemble(templatesDir+"/views/dashboards/admin.html")...)

	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)
	r.AddFromFilesFuncs("auth/forgot_password.html", funcMap, assemble(templatesDir+"/views/auth/forgot_password.html")...)
	r.AddFromFilesFuncs("auth/reset_password.html", funcMap, assemble(templatesDir+"/views/auth/reset_password.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
