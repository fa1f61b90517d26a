package chain

// CrowdTrust合约ABI（只含客户端用到的函数和事件）
const crowdtrustABI = `[
	{
		"type": "function",
		"name": "backProject",
		"inputs": [
			{"name": "project_id", "type": "uint64"}
		],
		"outputs": [],
		"stateMutability": "payable"
	},
	{
		"type": "function",
		"name": "createProject",
		"inputs": [
			{"name": "name", "type": "string"},
			{"name": "start_time", "type": "uint64"},
			{"name": "end_time", "type": "uint64"},
			{"name": "goal", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "uint64"}
		],
		"stateMutability": "nonpayable"
	},
	{
		"type": "function",
		"name": "refund",
		"inputs": [
			{"name": "project_id", "type": "uint64"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [],
		"stateMutability": "nonpayable"
	},
	{
		"type": "function",
		"name": "getProject",
		"inputs": [
			{"name": "id", "type": "uint64"}
		],
		"outputs": [
			{
				"name": "",
				"type": "tuple",
				"components": [
					{"name": "name", "type": "string"},
					{"name": "start_time", "type": "uint64"},
					{"name": "end_time", "type": "uint64"},
					{"name": "goal", "type": "uint256"},
					{"name": "total_pledged", "type": "uint256"}
				]
			}
		],
		"stateMutability": "view"
	},
	{
		"type": "function",
		"name": "getPledge",
		"inputs": [
			{"name": "project_id", "type": "uint64"},
			{"name": "backer", "type": "address"}
		],
		"outputs": [
			{"name": "", "type": "uint256"}
		],
		"stateMutability": "view"
	},
	{
		"type": "function",
		"name": "next_id",
		"inputs": [],
		"outputs": [
			{"name": "", "type": "uint64"}
		],
		"stateMutability": "view"
	},
	{
		"type": "event",
		"name": "Back",
		"inputs": [
			{"indexed": true, "name": "project_id", "type": "uint64"},
			{"indexed": true, "name": "owner", "type": "address"},
			{"indexed": false, "name": "amount", "type": "uint256"}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "Create",
		"inputs": [
			{"indexed": true, "name": "project_id", "type": "uint64"},
			{"indexed": true, "name": "owner", "type": "address"}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "Refund",
		"inputs": [
			{"indexed": true, "name": "project_id", "type": "uint64"},
			{"indexed": true, "name": "owner", "type": "address"},
			{"indexed": false, "name": "amount", "type": "uint256"}
		],
		"anonymous": false
	}
]`
