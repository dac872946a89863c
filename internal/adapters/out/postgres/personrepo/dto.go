// Package personrepo provides data transfer objects and mapping functions for
// the person directory. Persons and addresses are reference data for the
// engine; rows are seeded out of band.
package personrepo

import (
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/person"
)

// PersonDTO represents the database structure of a person.
type PersonDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// TableName specifies the database table name for persons.
func (PersonDTO) TableName() string {
	return "persons"
}

// AddressDTO represents the database structure of a person's address.
// The lowest-id address per person is the default cart destination.
type AddressDTO struct {
	ID       int64  `gorm:"primaryKey"`
	PersonID int64  `gorm:"index;not null"`
	Country  string `gorm:"type:varchar(2);not null"`
	Address  string `gorm:"not null"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func personToDomain(dto PersonDTO) (*person.Person, error) {
	return person.RestorePerson(dto.ID, dto.Name)
}

func addressToDomain(dto AddressDTO) (*person.Address, error) {
	country, err := kernel.NewCountry(dto.Country)
	if err != nil {
		return nil, err
	}

	return person.RestoreAddress(dto.ID, dto.PersonID, country, dto.Address)
}
