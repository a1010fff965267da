package models

import "strings"

func (r *Registration) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Surname = strings.TrimSpace(r.Surname)
	r.Email = strings.TrimSpace(r.Email)
}

func (c *Credentials) Normalize() {
	c.Email = strings.TrimSpace(c.Email)
}

func (d *NewDriver) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.VehicleNumber = strings.TrimSpace(d.VehicleNumber)
	d.LicenseNumber = strings.TrimSpace(d.LicenseNumber)
}

func (n *NewRestaurant) Normalize() {
	n.VendorEmail = strings.TrimSpace(n.VendorEmail)
	n.VendorName = strings.TrimSpace(n.VendorName)
	n.Name = strings.TrimSpace(n.Name)
	n.ContactEmail = strings.TrimSpace(n.ContactEmail)
	n.ApplyDefaults()
}

func (f *MenuItemForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
}
