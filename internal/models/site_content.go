package models

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	WhatsApp  string `json:"whatsapp"`
}

type SiteContent struct {
	LogoName      string      `json:"logoName"`
	AboutText     string      `json:"aboutText"`
	FooterAddress string      `json:"footerAddress"`
	FooterPhone   string      `json:"footerPhone"`
	FooterEmail   string      `json:"footerEmail"`
	SocialLinks   SocialLinks `json:"socialLinks"`
}
