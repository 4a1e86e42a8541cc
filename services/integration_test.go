//go:build integration

package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/services/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	testDB     *gorm.DB
	testUserID uint
)

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		getEnvTest("TEST_DB_HOST", "localhost"),
		getEnvTest("TEST_DB_PORT", "5432"),
		getEnvTest("TEST_DB_USER", "postgres"),
		getEnvTest("TEST_DB_PASSWORD", "postgres"),
		getEnvTest("TEST_DB_NAME", "skynest_test"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	dropTables()
	if err := testDB.AutoMigrate(
		&models.User{}, &models.RoomType{}, &models.Room{},
		&models.Service{}, &models.Booking{}, &models.ServiceUsage{}, &models.Payment{},
	); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}

	user := models.User{
		Name:        "Test Guest",
		Email:       "guest@test.local",
		Password:    "unused",
		PhoneNumber: "0900000001",
		Role:        constants.RoleGuest,
	}
	if err := testDB.Create(&user).Error; err != nil {
		log.Fatalf("failed to seed test user: %v", err)
	}
	testUserID = user.ID

	code := m.Run()
	dropTables()
	os.Exit(code)
}

func dropTables() {
	testDB.Exec("DROP TABLE IF EXISTS payments")
	testDB.Exec("DROP TABLE IF EXISTS service_usages")
	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS services")
	testDB.Exec("DROP TABLE IF EXISTS rooms")
	testDB.Exec("DROP TABLE IF EXISTS room_types")
	testDB.Exec("DROP TABLE IF EXISTS users")
}

func getEnvTest(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type testStack struct {
	ledger  *LedgerService
	avail   *AvailabilityService
	booking *BookingService
	usage   *ServiceUsageService
	payment *PaymentService
}

func newTestStack() *testStack {
	appLogger := logger.NewDefaultLogger(logger.ErrorLevel)
	notifier := NewLogNotifier(appLogger)
	ledger := NewLedgerService(testDB, appLogger)
	avail := NewAvailabilityService(testDB)
	return &testStack{
		ledger:  ledger,
		avail:   avail,
		booking: NewBookingService(testDB, avail, ledger, notifier, appLogger),
		usage:   NewServiceUsageService(testDB, ledger, appLogger),
		payment: NewPaymentService(testDB, ledger, notifier, appLogger),
	}
}

func seedRoom(t *testing.T, price float64, capacity int) *models.Room {
	t.Helper()
	roomType := models.RoomType{
		Name:     fmt.Sprintf("Type-%d", time.Now().UnixNano()),
		Price:    price,
		Capacity: capacity,
	}
	require.NoError(t, testDB.Create(&roomType).Error)

	room := models.Room{
		RoomNumber: fmt.Sprintf("R%d", time.Now().UnixNano()%1000000),
		RoomTypeID: roomType.ID,
		Status:     constants.RoomStatusAvailable,
	}
	require.NoError(t, testDB.Create(&room).Error)
	room.RoomType = roomType
	return &room
}

func seedService(t *testing.T, price float64) *models.Service {
	t.Helper()
	service := models.Service{
		Name:   fmt.Sprintf("Service-%d", time.Now().UnixNano()),
		Price:  price,
		Status: constants.ServiceStatusActive,
	}
	require.NoError(t, testDB.Create(&service).Error)
	return &service
}

func today() time.Time {
	return models.DateOnly(time.Now())
}

// Vòng đời đầy đủ: đặt phòng, xác nhận, cộng dịch vụ, trả từng phần,
// check-in bị chặn khi còn nợ, tất toán rồi check-out.
func TestBookingLifecycle_FullSettlement(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 100, 2)
	laundry := seedService(t, 25)

	booking, err := stack.booking.CreateBooking(CreateBookingInput{
		RoomID:    room.RoomId,
		UserID:    testUserID,
		CheckIn:   today(),
		CheckOut:  today().AddDate(0, 0, 2),
		NumGuests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusPending, booking.Status)
	assert.Equal(t, 200.0, booking.BaseAmount)

	_, err = stack.booking.TransitionStatus(booking.ID, constants.BookingStatusConfirmed, constants.RoleStaff)
	require.NoError(t, err)

	_, err = stack.usage.AddService(booking.ID, laundry.ID, 2, "")
	require.NoError(t, err)

	ledger, err := stack.ledger.GetLedger(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, ledger.TotalAmount)
	assert.Equal(t, 250.0, ledger.Outstanding)

	_, err = stack.payment.RecordPayment(RecordPaymentInput{
		BookingID: booking.ID,
		Amount:    100,
		Method:    constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	// Còn nợ 150 thì check-in phải bị chặn kèm số tiền còn thiếu
	_, err = stack.booking.TransitionStatus(booking.ID, constants.BookingStatusCheckedIn, constants.RoleStaff)
	var paymentRequired *apperrors.PaymentRequiredError
	require.True(t, errors.As(err, &paymentRequired))
	assert.Equal(t, 150.0, paymentRequired.Outstanding)

	_, err = stack.payment.RecordPayment(RecordPaymentInput{
		BookingID: booking.ID,
		Amount:    150,
		Method:    constants.PaymentMethodCreditCard,
	})
	require.NoError(t, err)

	checkedIn, err := stack.booking.TransitionStatus(booking.ID, constants.BookingStatusCheckedIn, constants.RoleStaff)
	require.NoError(t, err)
	assert.NotNil(t, checkedIn.CheckedInAt)

	// Dịch vụ cộng sau check-in làm phát sinh nợ mới, chặn check-out
	_, err = stack.usage.AddService(booking.ID, laundry.ID, 1, "late night")
	require.NoError(t, err)

	_, err = stack.booking.TransitionStatus(booking.ID, constants.BookingStatusCheckedOut, constants.RoleStaff)
	require.True(t, errors.As(err, &paymentRequired))
	assert.Equal(t, 25.0, paymentRequired.Outstanding)

	_, err = stack.payment.RecordPayment(RecordPaymentInput{
		BookingID: booking.ID,
		Amount:    25,
		Method:    constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	checkedOut, err := stack.booking.TransitionStatus(booking.ID, constants.BookingStatusCheckedOut, constants.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCheckedOut, checkedOut.Status)
	assert.NotNil(t, checkedOut.CheckedOutAt)

	final, err := stack.ledger.GetLedger(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 275.0, final.TotalAmount)
	assert.Equal(t, 275.0, final.PaidAmount)
	assert.Equal(t, 0.0, final.Outstanding)
}

func TestRecordPayment_RejectsOverpayment(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 150, 2)

	booking, err := stack.booking.CreateBooking(CreateBookingInput{
		RoomID:    room.RoomId,
		UserID:    testUserID,
		CheckIn:   today(),
		CheckOut:  today().AddDate(0, 0, 2),
		NumGuests: 1,
	})
	require.NoError(t, err)

	_, err = stack.payment.RecordPayment(RecordPaymentInput{
		BookingID: booking.ID,
		Amount:    400,
		Method:    constants.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, apperrors.ErrOverpayment)

	// Khoản bị từ chối không được để lại dấu vết trong sổ
	ledger, err := stack.ledger.GetLedger(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ledger.PaidAmount)
	assert.Equal(t, 300.0, ledger.Outstanding)
}

func TestAvailability_OverlapAndRelease(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 100, 2)

	booking, err := stack.booking.CreateBooking(CreateBookingInput{
		RoomID:    room.RoomId,
		UserID:    testUserID,
		CheckIn:   today().AddDate(0, 0, 10),
		CheckOut:  today().AddDate(0, 0, 13),
		NumGuests: 1,
	})
	require.NoError(t, err)

	overlapping, err := stack.avail.CheckAvailability(room.RoomId,
		today().AddDate(0, 0, 12), today().AddDate(0, 0, 15))
	require.NoError(t, err)
	assert.False(t, overlapping.Available)
	assert.Equal(t, ReasonBooked, overlapping.Reason)

	// Ngày trả phòng trùng ngày nhận phòng kế tiếp thì không tính trùng
	backToBack, err := stack.avail.CheckAvailability(room.RoomId,
		today().AddDate(0, 0, 13), today().AddDate(0, 0, 16))
	require.NoError(t, err)
	assert.True(t, backToBack.Available)

	// Hủy booking thì phòng được nhả ra
	_, err = stack.booking.TransitionStatus(booking.ID, constants.BookingStatusCancelled, constants.RoleGuest)
	require.NoError(t, err)

	released, err := stack.avail.CheckAvailability(room.RoomId,
		today().AddDate(0, 0, 12), today().AddDate(0, 0, 15))
	require.NoError(t, err)
	assert.True(t, released.Available)
}

func TestAvailability_MaintenanceBlocks(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 100, 2)
	require.NoError(t, testDB.Model(&models.Room{}).
		Where("room_id = ?", room.RoomId).
		Update("status", constants.RoomStatusMaintenance).Error)

	result, err := stack.avail.CheckAvailability(room.RoomId,
		today().AddDate(0, 0, 5), today().AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonMaintenance, result.Reason)
}

// Hai request đặt cùng phòng cùng khoảng ngày: chỉ một bên thắng,
// bên thua nhận lỗi phòng không còn trống chứ không âm thầm tạo booking trùng.
func TestCreateBooking_ConcurrentSameRoom(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 100, 2)

	input := CreateBookingInput{
		RoomID:    room.RoomId,
		UserID:    testUserID,
		CheckIn:   today().AddDate(0, 0, 20),
		CheckOut:  today().AddDate(0, 0, 23),
		NumGuests: 1,
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := stack.booking.CreateBooking(input)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
		} else if errors.Is(err, apperrors.ErrRoomNoLongerAvailable) {
			conflicts++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	var count int64
	require.NoError(t, testDB.Model(&models.Booking{}).
		Where("room_id = ? AND check_in_date = ?", room.RoomId, input.CheckIn).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// Nhiều khoản thanh toán song song trên cùng booking: tổng đã trả
// không bao giờ vượt tổng phải trả, khoản vượt bị từ chối.
func TestRecordPayment_ConcurrentNeverOverpays(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 100, 2)

	booking, err := stack.booking.CreateBooking(CreateBookingInput{
		RoomID:    room.RoomId,
		UserID:    testUserID,
		CheckIn:   today(),
		CheckOut:  today().AddDate(0, 0, 3),
		NumGuests: 1,
	})
	require.NoError(t, err)
	// Tổng phải trả 300, ba khoản 150 chạy song song thì khoản thứ ba phải bị từ chối

	var wg sync.WaitGroup
	results := make(chan error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := stack.payment.RecordPayment(RecordPaymentInput{
				BookingID: booking.ID,
				Amount:    150,
				Method:    constants.PaymentMethodCash,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, rejected int
	for err := range results {
		if err == nil {
			successes++
		} else if errors.Is(err, apperrors.ErrOverpayment) {
			rejected++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 2, successes)
	assert.Equal(t, 1, rejected)

	ledger, err := stack.ledger.GetLedger(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, ledger.PaidAmount)
	assert.Equal(t, 0.0, ledger.Outstanding)
}

func TestServiceUsage_ClosedBookingRejectsChanges(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 100, 2)
	spa := seedService(t, 50)

	booking, err := stack.booking.CreateBooking(CreateBookingInput{
		RoomID:    room.RoomId,
		UserID:    testUserID,
		CheckIn:   today().AddDate(0, 0, 30),
		CheckOut:  today().AddDate(0, 0, 31),
		NumGuests: 1,
	})
	require.NoError(t, err)

	usage, err := stack.usage.AddService(booking.ID, spa.ID, 1, "")
	require.NoError(t, err)

	_, err = stack.booking.TransitionStatus(booking.ID, constants.BookingStatusCancelled, constants.RoleGuest)
	require.NoError(t, err)

	_, err = stack.usage.AddService(booking.ID, spa.ID, 1, "")
	assert.ErrorIs(t, err, apperrors.ErrBookingNotModifiable)

	err = stack.usage.RemoveService(usage.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotModifiable)
}

// Đơn giá chốt tại thời điểm thêm: catalog đổi giá không làm sổ cũ xê dịch
func TestServiceUsage_PriceSnapshot(t *testing.T) {
	stack := newTestStack()
	room := seedRoom(t, 100, 2)
	minibar := seedService(t, 10)

	booking, err := stack.booking.CreateBooking(CreateBookingInput{
		RoomID:    room.RoomId,
		UserID:    testUserID,
		CheckIn:   today().AddDate(0, 0, 40),
		CheckOut:  today().AddDate(0, 0, 41),
		NumGuests: 1,
	})
	require.NoError(t, err)

	usage, err := stack.usage.AddService(booking.ID, minibar.ID, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 10.0, usage.UnitPrice)
	assert.Equal(t, 20.0, usage.TotalPrice)

	require.NoError(t, testDB.Model(&models.Service{}).
		Where("id = ?", minibar.ID).Update("price", 99).Error)

	ledger, err := stack.ledger.GetLedger(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, ledger.ServicesAmount)
}
