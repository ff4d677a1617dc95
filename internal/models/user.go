package models

// UserRole distinguishes the admin account from the cleaning staff.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCleaner UserRole = "cleaner"
)

// User is a fixed identity on the housekeeping team. Users are statically
// enumerated and never created or destroyed at runtime; the Color field is a
// display attribute consumed by the front-end.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	Color    string   `json:"color"`
}

// IsAdmin reports whether the user may perform roster administration.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Users is the static team roster.
var Users = []User{
	{ID: "0", Username: "Admin", Role: RoleAdmin, Color: "bg-slate-800"},
	{ID: "1", Username: "Ali", Role: RoleCleaner, Color: "bg-blue-500"},
	{ID: "2", Username: "Ayoub", Role: RoleCleaner, Color: "bg-green-500"},
	{ID: "3", Username: "Youness", Role: RoleCleaner, Color: "bg-purple-500"},
}

// FindUser looks up a roster entry by username.
func FindUser(username string) (User, bool) {
	for _, u := range Users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}
