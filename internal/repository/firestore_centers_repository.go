package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/domain/repository"
)

// FirestoreCentersRepository Firestoreのコレクションからセンターを読み込む
type FirestoreCentersRepository struct {
	client     *firestore.Client
	collection string
}

var _ repository.CentersRepository = (*FirestoreCentersRepository)(nil)

func NewFirestoreCentersRepository(client *firestore.Client, collection string) *FirestoreCentersRepository {
	return &FirestoreCentersRepository{
		client:     client,
		collection: collection,
	}
}

// Name ソース名
func (r *FirestoreCentersRepository) Name() string {
	return "firestore:" + r.collection
}

// LoadAll はドキュメントID順に全センターを取得する
func (r *FirestoreCentersRepository) LoadAll(ctx context.Context) ([]model.Center, error) {
	iter := r.client.Collection(r.collection).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var centers []model.Center
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("センターデータの取得に失敗しました: %w", err)
		}

		center, err := centerFromDocument(doc.Ref.ID, doc.Data())
		if err != nil {
			return nil, &model.ConfigError{Reason: r.Name(), Err: err}
		}
		centers = append(centers, center)
	}
	return centers, nil
}

// centerFromDocument ドキュメントのフィールドをセンターに変換する
// lat / lng は必須で、欠けている場合や数値でない場合はエラー
func centerFromDocument(docID string, data map[string]interface{}) (model.Center, error) {
	lat, err := numberField(docID, data, "lat")
	if err != nil {
		return model.Center{}, err
	}
	lng, err := numberField(docID, data, "lng")
	if err != nil {
		return model.Center{}, err
	}

	center := model.Center{
		ID:         stringField(data, "id"),
		Name:       stringField(data, "name"),
		Lat:        lat,
		Lng:        lng,
		Feature:    stringField(data, "feature"),
		Events:     stringField(data, "events"),
		Programs:   stringField(data, "programs"),
		Categories: stringField(data, "categories"),
		Area:       stringField(data, "area"),
	}
	if center.ID == "" {
		center.ID = docID
	}
	return center, nil
}

func numberField(docID string, data map[string]interface{}, key string) (float64, error) {
	switch v := data[key].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case nil:
		return 0, fmt.Errorf("ドキュメント %s の %s がありません", docID, key)
	default:
		return 0, fmt.Errorf("ドキュメント %s の %s が数値ではありません (%T)", docID, key, v)
	}
}

func stringField(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case int64:
		return fmt.Sprintf("%d", v)
	default:
		return ""
	}
}
