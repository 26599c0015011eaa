package java

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// ClassModel describes one documented type. Name is the qualified name with
// '.' separating nested types, e.g. com.example.Outer.Inner.
type ClassModel struct {
	Name                string                 `json:"name" yaml:"name"`
	SimpleName          string                 `json:"simpleName,omitempty" yaml:"simpleName,omitempty"`
	Package             string                 `json:"package,omitempty" yaml:"package,omitempty"`
	SuperClass          string                 `json:"superClass,omitempty" yaml:"superClass,omitempty"`
	SuperClassType      *TypeModel             `json:"superClassType,omitempty" yaml:"superClassType,omitempty"`
	Interfaces          []string               `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	InterfaceTypes      []TypeModel            `json:"interfaceTypes,omitempty" yaml:"interfaceTypes,omitempty"`
	Visibility          Visibility             `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Kind                ClassKind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	IsFinal             bool                   `json:"isFinal,omitempty" yaml:"isFinal,omitempty"`
	IsAbstract          bool                   `json:"isAbstract,omitempty" yaml:"isAbstract,omitempty"`
	IsStatic            bool                   `json:"isStatic,omitempty" yaml:"isStatic,omitempty"`
	IsSynthetic         bool                   `json:"isSynthetic,omitempty" yaml:"isSynthetic,omitempty"`
	IsSealed            bool                   `json:"isSealed,omitempty" yaml:"isSealed,omitempty"`
	SourceFile          string                 `json:"sourceFile,omitempty" yaml:"sourceFile,omitempty"`
	SourceURL           URLString              `json:"sourceURL,omitempty" yaml:"sourceURL,omitempty"`
	IsDeprecated        bool                   `json:"isDeprecated,omitempty" yaml:"isDeprecated,omitempty"`
	Javadoc             string                 `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
	Annotations         []AnnotationModel      `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	RecordComponents    []RecordComponentModel `json:"recordComponents,omitempty" yaml:"recordComponents,omitempty"`
	PermittedSubclasses []string               `json:"permittedSubclasses,omitempty" yaml:"permittedSubclasses,omitempty"`
	EnclosingClass      string                 `json:"enclosingClass,omitempty" yaml:"enclosingClass,omitempty"`
	InnerClasses        []InnerClassModel      `json:"innerClasses,omitempty" yaml:"innerClasses,omitempty"`
	EnumConstants       []EnumConstantModel    `json:"enumConstants,omitempty" yaml:"enumConstants,omitempty"`
	Fields              []FieldModel           `json:"fields,omitempty" yaml:"fields,omitempty"`
	Constructors        []MethodModel          `json:"constructors,omitempty" yaml:"constructors,omitempty"`
	Methods             []MethodModel          `json:"methods,omitempty" yaml:"methods,omitempty"`
	TypeParameters      []TypeParameterModel   `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
}

type EnumConstantModel struct {
	Name      string   `json:"name" yaml:"name"`
	Arguments []string `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Javadoc   string   `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
}

type FieldModel struct {
	Name          string            `json:"name" yaml:"name"`
	Type          TypeModel         `json:"type" yaml:"type"`
	Visibility    Visibility        `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic      bool              `json:"isStatic,omitempty" yaml:"isStatic,omitempty"`
	IsFinal       bool              `json:"isFinal,omitempty" yaml:"isFinal,omitempty"`
	IsVolatile    bool              `json:"isVolatile,omitempty" yaml:"isVolatile,omitempty"`
	IsTransient   bool              `json:"isTransient,omitempty" yaml:"isTransient,omitempty"`
	IsSynthetic   bool              `json:"isSynthetic,omitempty" yaml:"isSynthetic,omitempty"`
	IsDeprecated  bool              `json:"isDeprecated,omitempty" yaml:"isDeprecated,omitempty"`
	Javadoc       string            `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
	Annotations   []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	ConstantValue interface{}       `json:"constantValue,omitempty" yaml:"constantValue,omitempty"`
}

// MethodModel describes a method. Constructors use the same model; their
// Name is the simple name of the declaring class.
type MethodModel struct {
	Name           string               `json:"name" yaml:"name"`
	ReturnType     TypeModel            `json:"returnType" yaml:"returnType"`
	Parameters     []ParameterModel     `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Visibility     Visibility           `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic       bool                 `json:"isStatic,omitempty" yaml:"isStatic,omitempty"`
	IsFinal        bool                 `json:"isFinal,omitempty" yaml:"isFinal,omitempty"`
	IsAbstract     bool                 `json:"isAbstract,omitempty" yaml:"isAbstract,omitempty"`
	IsSynchronized bool                 `json:"isSynchronized,omitempty" yaml:"isSynchronized,omitempty"`
	IsNative       bool                 `json:"isNative,omitempty" yaml:"isNative,omitempty"`
	IsVarargs      bool                 `json:"isVarargs,omitempty" yaml:"isVarargs,omitempty"`
	IsSynthetic    bool                 `json:"isSynthetic,omitempty" yaml:"isSynthetic,omitempty"`
	IsDefault      bool                 `json:"isDefault,omitempty" yaml:"isDefault,omitempty"`
	IsDeprecated   bool                 `json:"isDeprecated,omitempty" yaml:"isDeprecated,omitempty"`
	Javadoc        string               `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
	Annotations    []AnnotationModel    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Exceptions     []string             `json:"exceptions,omitempty" yaml:"exceptions,omitempty"`
	TypeParameters []TypeParameterModel `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
}

type ParameterModel struct {
	Name        string            `json:"name" yaml:"name"`
	Type        TypeModel         `json:"type" yaml:"type"`
	IsFinal     bool              `json:"isFinal,omitempty" yaml:"isFinal,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type TypeModel struct {
	Name          string              `json:"name" yaml:"name"`
	ArrayDepth    int                 `json:"arrayDepth,omitempty" yaml:"arrayDepth,omitempty"`
	TypeArguments []TypeArgumentModel `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`
}

type TypeArgumentModel struct {
	Type       *TypeModel `json:"type,omitempty" yaml:"type,omitempty"`
	IsWildcard bool       `json:"isWildcard,omitempty" yaml:"isWildcard,omitempty"`
	BoundKind  string     `json:"boundKind,omitempty" yaml:"boundKind,omitempty"` // "extends", "super", or "" for unbounded
	Bound      *TypeModel `json:"bound,omitempty" yaml:"bound,omitempty"`
}

type TypeParameterModel struct {
	Name   string      `json:"name" yaml:"name"`
	Bounds []TypeModel `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

// AnnotationModel is an annotation usage. Values hold strings, numbers,
// booleans, nested annotations (as map with a "@type" key) or lists of those.
type AnnotationModel struct {
	Type   string                 `json:"type" yaml:"type"`
	Values map[string]interface{} `json:"values,omitempty" yaml:"values,omitempty"`
}

type RecordComponentModel struct {
	Name        string            `json:"name" yaml:"name"`
	Type        TypeModel         `json:"type" yaml:"type"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type InnerClassModel struct {
	InnerClass string     `json:"innerClass" yaml:"innerClass"`
	OuterClass string     `json:"outerClass,omitempty" yaml:"outerClass,omitempty"`
	InnerName  string     `json:"innerName,omitempty" yaml:"innerName,omitempty"`
	Visibility Visibility `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic   bool       `json:"isStatic,omitempty" yaml:"isStatic,omitempty"`
}

// PackageInfoModel carries the package-level documentation.
type PackageInfoModel struct {
	Name        string            `json:"name" yaml:"name"`
	SourceFile  string            `json:"sourceFile,omitempty" yaml:"sourceFile,omitempty"`
	Javadoc     string            `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// IsVisible reports whether a member with visibility v is documented by
// default.
func IsVisible(v Visibility) bool {
	return v == VisibilityPublic || v == VisibilityProtected || v == ""
}
