package database

import (
	"fmt"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient PostgREST経由でテーブルを読み込むクライアント
type SupabaseClient struct {
	client *supabase.Client
	url    string
}

// NewSupabaseClient は SUPABASE_URL / SUPABASE_ANON_KEY からクライアントを作成する
func NewSupabaseClient() (*SupabaseClient, error) {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_ANON_KEY")
	switch {
	case url == "":
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	case key == "":
		return nil, fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
	}

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}
	return &SupabaseClient{client: client, url: url}, nil
}

// SelectOrdered はテーブルの指定カラムを orderBy 昇順で全件取得し、生のJSONを返す
func (sc *SupabaseClient) SelectOrdered(table, columns, orderBy string) ([]byte, error) {
	data, _, err := sc.client.From(table).
		Select(columns, "", false).
		Order(orderBy, nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%s からの取得に失敗 (%s): %w", table, sc.url, err)
	}
	return data, nil
}
