package models

import "errors"

// ProfileField énumère les champs éditables du profil. Les éditions
// passent par SetField plutôt que par des clés dynamiques.
type ProfileField string

const (
	FieldName    ProfileField = "name"
	FieldEmail   ProfileField = "email"
	FieldPhone   ProfileField = "phone"
	FieldAddress ProfileField = "address"
)

var ErrUnknownProfileField = errors.New("champ de profil inconnu")

func ParseProfileField(s string) (ProfileField, error) {
	switch ProfileField(s) {
	case FieldName, FieldEmail, FieldPhone, FieldAddress:
		return ProfileField(s), nil
	}
	return "", ErrUnknownProfileField
}

// Profile porte les coordonnées de l'utilisateur et son historique de
// commandes. L'historique est strictement append-only.
type Profile struct {
	UserID  string  `json:"user_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Orders  []Order `json:"orders,omitempty"`
}

// SetField applique une édition de champ. L'écran profil accepte les
// valeurs vides ; la validation stricte d'adresse n'existe qu'au
// checkout (models.Address.Validate).
func (p *Profile) SetField(f ProfileField, value string) error {
	switch f {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldAddress:
		p.Address = value
	default:
		return ErrUnknownProfileField
	}
	return nil
}

func (p *Profile) AddOrder(o Order) {
	p.Orders = append(p.Orders, o)
}
