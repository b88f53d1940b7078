package core

import (
	"fmt"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/database"
	"github.com/genemuffin/genemuffind/models"
	"github.com/jinzhu/gorm"
)

// GetNotifications returns up to limit notifications, newest first.
// If offsetID is provided only notifications older than the one with
// that ID are returned.
func (n *GeneMuffinNode) GetNotifications(limit int, offsetID string) ([]models.NotificationRecord, error) {
	var records []models.NotificationRecord
	err := n.repo.DB().View(func(tx database.Tx) error {
		query := tx.Read().Order("timestamp desc")
		if limit > 0 {
			query = query.Limit(limit)
		}
		if offsetID != "" {
			var offset models.NotificationRecord
			if err := tx.Read().Where("id = ?", offsetID).First(&offset).Error; err != nil {
				return err
			}
			query = query.Where("timestamp < ?", offset.Timestamp)
		}
		return query.Find(&records).Error
	})
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("%w: %s", coreiface.ErrNotFound, err)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %s", coreiface.ErrInternalServer, err)
	}
	return records, nil
}

// MarkNotificationAsRead marks the notification with the given ID
// as read.
func (n *GeneMuffinNode) MarkNotificationAsRead(id string) error {
	err := n.repo.DB().Update(func(tx database.Tx) error {
		var record models.NotificationRecord
		if err := tx.Read().Where("id = ?", id).First(&record).Error; err != nil {
			return err
		}
		record.Read = true
		return tx.Save(&record)
	})
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("%w: %s", coreiface.ErrNotFound, err)
	} else if err != nil {
		return fmt.Errorf("%w: %s", coreiface.ErrInternalServer, err)
	}
	return nil
}

// MarkAllNotificationsAsRead marks every notification as read.
func (n *GeneMuffinNode) MarkAllNotificationsAsRead() error {
	err := n.repo.DB().Update(func(tx database.Tx) error {
		return tx.Update("read", true, nil, &models.NotificationRecord{})
	})
	if err != nil {
		return fmt.Errorf("%w: %s", coreiface.ErrInternalServer, err)
	}
	return nil
}

// DeleteNotification deletes the notification with the given ID.
func (n *GeneMuffinNode) DeleteNotification(id string) error {
	err := n.repo.DB().Update(func(tx database.Tx) error {
		var record models.NotificationRecord
		if err := tx.Read().Where("id = ?", id).First(&record).Error; err != nil {
			return err
		}
		return tx.Delete("id", id, nil, &models.NotificationRecord{})
	})
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("%w: %s", coreiface.ErrNotFound, err)
	} else if err != nil {
		return fmt.Errorf("%w: %s", coreiface.ErrInternalServer, err)
	}
	return nil
}
