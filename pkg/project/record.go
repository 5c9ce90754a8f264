package project

type Flavor string

const (
	SinglePage     Flavor = "single-page"
	ServerRendered Flavor = "server-rendered"
)

type Language string

const (
	Typed   Language = "typed"
	Untyped Language = "untyped"
)

type UI string

const (
	UINone           UI = "none"
	UtilityCSS       UI = "utility-css"
	ComponentLibrary UI = "component-library"
)

type Icons string

const (
	IconsNone  Icons = "none"
	ReactIcons Icons = "react-icons"
	Lucide     Icons = "lucide"
)

type Notification string

const (
	NotificationNone Notification = "none"
	Toastify         Notification = "toastify"
	Sonner           Notification = "sonner"
)

type Auth string

const (
	AuthNone Auth = "none"
	Clerk    Auth = "clerk"
	Auth0    Auth = "auth0"
	Firebase Auth = "firebase"
	Supabase Auth = "supabase"
)

type Structure string

const (
	Classic       Structure = "classic"
	FeatureSliced Structure = "feature-sliced"
)

// Record is a resolved, canonical project configuration. Fields that do not
// apply to the selected flavor or UI library are absent rather than defaulted.
// A Record is only ever produced by Resolve and is passed by value.
type Record struct {
	Name         string
	Flavor       Flavor
	Language     Language
	UI           UI
	Router       Opt[bool]
	Icons        Icons
	Notification Opt[Notification]
	Auth         Auth
	State        bool
	HTTP         bool
	Structure    Opt[Structure]
}

func (r Record) SinglePage() bool {
	return r.Flavor == SinglePage
}

func (r Record) Typed() bool {
	return r.Language == Typed
}

// UsesRouter reports whether client-side routing was selected.
func (r Record) UsesRouter() bool {
	return r.Router.Or(false)
}

// Answers renders r back into the raw form it was resolved from. Absent
// fields stay unset, so Resolve(r.Answers()) yields r again.
func (r Record) Answers() Answers {
	a := Answers{
		Name:     r.Name,
		Flavor:   string(r.Flavor),
		Language: string(r.Language),
		UI:       string(r.UI),
		Icons:    string(r.Icons),
		Auth:     string(r.Auth),
		State:    boolPtr(r.State),
		HTTP:     boolPtr(r.HTTP),
	}
	if v, ok := r.Router.Get(); ok {
		a.Router = boolPtr(v)
	}
	if v, ok := r.Notification.Get(); ok {
		a.Notification = string(v)
	}
	if v, ok := r.Structure.Get(); ok {
		a.Structure = string(v)
	}
	return a
}

func boolPtr(b bool) *bool {
	return &b
}
