package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"studioops/internal/database"
	"studioops/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studioops.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Room{},
		&domain.Staff{},
		&domain.Equipment{},
		&domain.PackageTemplate{},
		&domain.Account{},
		&domain.Booking{},
		&domain.Transaction{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM transactions")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM accounts")
	db.Exec("DELETE FROM package_templates")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM staff")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM users")

	const tenantID = 1

	// ================== USERS ==================
	log.Println("Creating users...")
	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		TenantID:     tenantID,
		Email:        "owner@studioops.local",
		PasswordHash: string(ownerHash),
		Name:         "Studio Owner",
		Role:         domain.RoleOwner,
	}
	db.Create(&owner)

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		TenantID:     tenantID,
		Email:        "manager@studioops.local",
		PasswordHash: string(managerHash),
		Name:         "Front Desk",
		Role:         domain.RoleManager,
	}
	db.Create(&manager)

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	roomA := domain.Room{TenantID: tenantID, Name: "Cyclorama A", AreaSqm: 80, IsActive: true}
	roomB := domain.Room{TenantID: tenantID, Name: "Daylight B", AreaSqm: 45, IsActive: true}
	db.Create(&roomA)
	db.Create(&roomB)

	// ================== STAFF ==================
	log.Println("Creating staff...")
	photographer := domain.Staff{TenantID: tenantID, Name: "Lead Photographer"}
	retoucher := domain.Staff{
		TenantID:         tenantID,
		Name:             "Retoucher",
		UnavailableDates: []string{time.Now().AddDate(0, 0, 7).UTC().Format("2006-01-02")},
	}
	db.Create(&photographer)
	db.Create(&retoucher)

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")
	db.Create(&domain.Equipment{TenantID: tenantID, Name: "Profoto B10 kit", Category: "lighting", Status: domain.EquipmentAvailable})
	db.Create(&domain.Equipment{TenantID: tenantID, Name: "85mm f/1.4", Category: "lens", Status: domain.EquipmentAvailable})
	db.Create(&domain.Equipment{TenantID: tenantID, Name: "Fog machine", Category: "props", Status: domain.EquipmentMaintenance})

	// ================== PACKAGES ==================
	log.Println("Creating package templates...")
	db.Create(&domain.PackageTemplate{
		TenantID:    tenantID,
		Name:        "Portrait Session",
		Price:       1500000,
		DurationMin: 90,
		Features:    []string{"1 hour shooting", "10 retouched photos"},
	})
	db.Create(&domain.PackageTemplate{
		TenantID:    tenantID,
		Name:        "Full Day Production",
		Price:       8000000,
		DurationMin: 480,
		Features:    []string{"8 hours", "assistant", "all raws"},
	})

	// ================== CLIENTS ==================
	log.Println("Creating clients...")
	clientA := domain.Client{TenantID: tenantID, Name: "Aiya K.", Phone: "+7 777 123 4567", Email: "aiya@mail.kz"}
	clientB := domain.Client{TenantID: tenantID, Name: "Bek T.", Email: "bek@gmail.com", Flagged: true}
	db.Create(&clientA)
	db.Create(&clientB)

	// ================== ACCOUNTS ==================
	log.Println("Creating accounts...")
	cash := domain.Account{TenantID: tenantID, Name: "Front desk cash", Kind: domain.AccountCash}
	bank := domain.Account{TenantID: tenantID, Name: "Operating bank", Kind: domain.AccountBank}
	db.Create(&cash)
	db.Create(&bank)

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	tomorrow := time.Now().AddDate(0, 0, 1).UTC().Truncate(24 * time.Hour)

	booked := domain.Booking{
		TenantID:        tenantID,
		ClientID:        clientA.ID,
		Date:            tomorrow,
		StartMinute:     10 * 60,
		DurationMin:     120,
		RoomID:          roomA.ID,
		StaffID:         &photographer.ID,
		Price:           1500000,
		TaxRateSnapshot: 0.11,
		PaidAmount:      500000,
		Status:          domain.BookingBooked,
		PaymentState:    domain.PaymentPartial,
		ContractStatus:  domain.ContractSent,
		Notes:           "Portrait session, deposit taken at intake",
	}
	db.Create(&booked)

	inquiry := domain.Booking{
		TenantID:        tenantID,
		ClientID:        clientB.ID,
		Date:            tomorrow,
		StartMinute:     14 * 60,
		DurationMin:     60,
		RoomID:          roomB.ID,
		Price:           800000,
		TaxRateSnapshot: 0.11,
		Status:          domain.BookingInquiry,
		PaymentState:    domain.PaymentUnpaid,
		ContractStatus:  domain.ContractNone,
		Notes:           "Tentative hold, no deposit yet",
	}
	db.Create(&inquiry)

	// Deposit transaction matching the booked session above.
	db.Create(&domain.Transaction{
		TenantID:    tenantID,
		At:          time.Now(),
		Description: "Deposit for booking",
		Amount:      500000,
		Kind:        domain.TxIncome,
		AccountID:   cash.ID,
		Category:    domain.CategoryDeposit,
		BookingID:   &booked.ID,
		Status:      domain.TxPosted,
	})
	db.Model(&domain.Account{}).Where("id = ?", cash.ID).Update("balance", 500000)

	log.Println("Seed completed.")
	log.Println("Logins:")
	log.Println("  owner@studioops.local / owner123")
	log.Println("  manager@studioops.local / manager123")
}
