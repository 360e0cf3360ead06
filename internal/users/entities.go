package users

// User representa uma conta registrada, incluindo a credencial.
// A credencial é armazenada e comparada em texto puro: este sistema de
// demonstração não faz hash de senhas.
type User struct {
	ID       int
	Name     string
	Email    string
	Password string
}

// PublicUser é a visão externa de uma conta, sem a credencial
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public retorna a visão externa da conta
func (u *User) Public() PublicUser {
	return PublicUser{Name: u.Name, Email: u.Email}
}
