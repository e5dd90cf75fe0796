// Package forms declares the data contract of every user-facing form: which
// fields exist, their input kind, and whether they are required. Templates
// render from these configs; styling stays in the templates.
package forms

// FieldKind 输入控件类型
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
	KindPassword FieldKind = "password"
	KindSelect   FieldKind = "select"
	KindFile     FieldKind = "file"
)

// Field 单个表单字段的配置
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Required    bool
	MaxLen      int
	Placeholder string
}

// PostForm 发布/编辑文章表单
type PostForm struct {
	Title         string
	Excerpt       string
	Text          string
	CategoryID    string
	Tags          string // comma separated tag names
	FeaturedImage string

	*Validator
}

// NewPostForm 空表单也带可用的错误容器，模板不用判 nil
func NewPostForm() *PostForm {
	return &PostForm{Validator: NewValidator()}
}

func (f *PostForm) Fields() []Field {
	return []Field{
		{Name: "title", Label: "Title", Kind: KindText, Required: true, MaxLen: 200, Placeholder: "Give your post a captivating title..."},
		{Name: "excerpt", Label: "Excerpt", Kind: KindTextarea, MaxLen: 300, Placeholder: "Brief summary (optional)"},
		{Name: "text", Label: "Body", Kind: KindTextarea, Required: true, Placeholder: "Start writing your story..."},
		{Name: "category_id", Label: "Category", Kind: KindSelect},
		{Name: "tags", Label: "Tags", Kind: KindText, Placeholder: "messi, camp-nou, la-liga"},
		{Name: "featured_image", Label: "Featured image", Kind: KindFile},
	}
}

func (f *PostForm) Validate() bool {
	f.Validator = NewValidator()
	f.Check(NotBlank(f.Title), "title", "Title is required")
	f.Check(MaxChars(f.Title, 200), "title", "Title must be at most 200 characters")
	f.Check(MaxChars(f.Excerpt, 300), "excerpt", "Excerpt must be at most 300 characters")
	f.Check(NotBlank(f.Text), "text", "Body text is required")
	return f.Valid()
}

// CommentForm 评论表单
type CommentForm struct {
	AuthorName string
	Email      string
	Text       string

	*Validator
}

func NewCommentForm() *CommentForm {
	return &CommentForm{Validator: NewValidator()}
}

func (f *CommentForm) Fields() []Field {
	return []Field{
		{Name: "author_name", Label: "Name", Kind: KindText, Required: true, MaxLen: 200, Placeholder: "Your name"},
		{Name: "email", Label: "Email", Kind: KindEmail, Placeholder: "Your email (optional)"},
		{Name: "text", Label: "Comment", Kind: KindTextarea, Required: true, Placeholder: "Share your thoughts..."},
	}
}

func (f *CommentForm) Validate() bool {
	f.Validator = NewValidator()
	f.Check(NotBlank(f.AuthorName), "author_name", "Name is required")
	f.Check(MaxChars(f.AuthorName, 200), "author_name", "Name must be at most 200 characters")
	if f.Email != "" {
		f.Check(ValidEmail(f.Email), "email", "Enter a valid email address")
	}
	f.Check(NotBlank(f.Text), "text", "Comment text is required")
	return f.Valid()
}

// RegisterForm 注册表单
type RegisterForm struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string

	*Validator
}

func NewRegisterForm() *RegisterForm {
	return &RegisterForm{Validator: NewValidator()}
}

func (f *RegisterForm) Fields() []Field {
	return []Field{
		{Name: "username", Label: "Username", Kind: KindText, Required: true, MaxLen: 150, Placeholder: "Choose a username"},
		{Name: "email", Label: "Email", Kind: KindEmail, Required: true, Placeholder: "Enter your email"},
		{Name: "first_name", Label: "First name", Kind: KindText, MaxLen: 150, Placeholder: "First name (optional)"},
		{Name: "last_name", Label: "Last name", Kind: KindText, MaxLen: 150, Placeholder: "Last name (optional)"},
		{Name: "password", Label: "Password", Kind: KindPassword, Required: true, Placeholder: "Enter a strong password"},
		{Name: "password_confirm", Label: "Confirm password", Kind: KindPassword, Required: true, Placeholder: "Confirm password"},
	}
}

// Validate 只做本地校验，用户名/邮箱是否占用由 handler 查库后补充
func (f *RegisterForm) Validate() bool {
	f.Validator = NewValidator()
	f.Check(NotBlank(f.Username), "username", "Username is required")
	f.Check(MaxChars(f.Username, 150), "username", "Username must be at most 150 characters")
	f.Check(ValidEmail(f.Email), "email", "Enter a valid email address")
	f.Check(MinChars(f.Password, 8), "password", "Password must be at least 8 characters")
	f.Check(f.Password == f.PasswordConfirm, "password_confirm", "Passwords do not match!")
	return f.Valid()
}
